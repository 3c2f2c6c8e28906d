package main

import (
	"context"
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/stpnv0/VaccineBooker/internal/cache"
	"github.com/stpnv0/VaccineBooker/internal/config"
	"github.com/stpnv0/VaccineBooker/internal/repository"
	"github.com/stpnv0/VaccineBooker/internal/seed"
	"github.com/stpnv0/VaccineBooker/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

// seed загружает стандартный каталог вакцин в Postgres.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg := config.MustLoad()

	lg, err := logger.InitLogger(cfg.Logger.LogEngine(), "VaccineBooker-seed", cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()))
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	db, err := dbpg.New(cfg.Postgres.DSN(), nil, &dbpg.Options{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer db.Master.Close()

	// Кэш не трогаем: сервис сбросит его при следующем изменении каталога.
	vaccines := service.NewVaccineService(repository.NewVaccineRepo(db), cache.Noop{}, lg)

	created, err := seed.Run(context.Background(), vaccines, lg)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeded %d vaccines", created)
}
