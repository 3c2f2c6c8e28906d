package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/VaccineBooker/internal/cache"
	"github.com/stpnv0/VaccineBooker/internal/config"
	"github.com/stpnv0/VaccineBooker/internal/handler"
	"github.com/stpnv0/VaccineBooker/internal/metrics"
	"github.com/stpnv0/VaccineBooker/internal/middleware"
	"github.com/stpnv0/VaccineBooker/internal/notification"
	"github.com/stpnv0/VaccineBooker/internal/repository"
	"github.com/stpnv0/VaccineBooker/internal/repository/memory"
	"github.com/stpnv0/VaccineBooker/internal/router"
	"github.com/stpnv0/VaccineBooker/internal/scheduler"
	"github.com/stpnv0/VaccineBooker/internal/seed"
	"github.com/stpnv0/VaccineBooker/internal/service"
	"github.com/stpnv0/VaccineBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const appName = "VaccineBooker"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	amqpConn   *amqp.Connection
	amqpCh     *amqp.Channel
	dispatcher *notification.Dispatcher
	consumer   *notification.RabbitConsumer
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

type repos struct {
	vaccines ports.VaccineRepo
	bookings ports.BookingRepo
	users    ports.UserRepo
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	metrics.Register()

	r, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	vaccineCache, err := app.initCache()
	if err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init cache: %w", err)
	}

	if err = app.initServices(r, vaccineCache); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (repos, error) {
	if a.cfg.Storage.Driver == config.StorageMemory {
		store := memory.NewStore()
		a.log.Warn("using in-memory storage, data is lost on restart")
		return repos{
			vaccines: store.Vaccines(),
			bookings: store.Bookings(),
			users:    store.Users(),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return repos{}, fmt.Errorf("migrations: %w", err)
	}
	if err := a.initDB(); err != nil {
		return repos{}, err
	}

	return repos{
		vaccines: repository.NewVaccineRepo(a.db),
		bookings: repository.NewBookingRepo(a.db),
		users:    repository.NewUserRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initCache() (ports.VaccineCache, error) {
	if !a.cfg.Redis.Enabled() {
		a.log.Info("redis address is empty, vaccine cache disabled")
		return cache.Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.Redis.TTL),
	)

	return cache.NewVaccineCache(client, a.cfg.Redis.Prefix, a.cfg.Redis.TTL, a.log), nil
}

func (a *App) initMailer() ports.Mailer {
	smtp := a.cfg.SMTP
	if smtp.Host == "" {
		a.log.Warn("smtp host is empty, mail will only be logged")
		return notification.NewLogMailer(a.log)
	}
	return notification.NewSMTPMailer(smtp.Host, smtp.Port, smtp.User, smtp.Password, smtp.From)
}

func (a *App) initQueue(mailer ports.Mailer) (ports.NotificationQueue, error) {
	n := a.cfg.Notification
	if n.Transport != config.TransportRabbitMQ {
		a.dispatcher = notification.NewDispatcher(mailer, n.Workers, n.QueueSize, a.log)
		return a.dispatcher, nil
	}

	conn, ch, err := notification.SetupRabbit(n.AMQPURL, n.Exchange, a.log)
	if err != nil {
		return nil, err
	}
	a.amqpConn, a.amqpCh = conn, ch
	a.consumer = notification.NewRabbitConsumer(ch, n.Exchange, n.Queue, mailer, a.log)

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "rabbitmq connected",
		logger.String("exchange", n.Exchange),
		logger.String("queue", n.Queue),
	)
	return notification.NewRabbitPublisher(ch, n.Exchange, a.log), nil
}

func (a *App) initServices(r repos, vaccineCache ports.VaccineCache) error {
	mailer := a.initMailer()

	queue, err := a.initQueue(mailer)
	if err != nil {
		return fmt.Errorf("init notification queue: %w", err)
	}

	chat, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	vaccineService := service.NewVaccineService(r.vaccines, vaccineCache, a.log)
	bookingService := service.NewBookingService(r.bookings, r.vaccines, r.users, queue, chat, vaccineCache, a.log)
	userService := service.NewUserService(r.users)
	contactService := service.NewContactService(mailer, chat, a.cfg.SMTP.AdminEmail, a.log)
	reminderService := service.NewReminderService(r.bookings, mailer, a.cfg.Scheduler.ReminderDaysBefore, a.log)

	if a.cfg.Storage.Seed {
		if _, err = seed.Run(context.Background(), vaccineService, a.log); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	a.scheduler = scheduler.New(
		reminderService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(vaccineService, bookingService, userService, contactService, reminderService)
	if a.cfg.Auth.AdminToken == "" {
		a.log.Warn("admin token is empty, admin API is disabled")
	}
	rt := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminAuth(a.cfg.Auth.AdminToken),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      rt,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.dispatcher != nil {
		a.dispatcher.Start(ctx)
	}

	errCh := make(chan error, 2)
	if a.consumer != nil {
		go func() {
			if err := a.consumer.Run(ctx); err != nil {
				errCh <- fmt.Errorf("notification consumer: %w", err)
			}
		}()
	}

	go a.scheduler.Start(ctx)

	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
			logger.String("notification_transport", a.cfg.Notification.Transport),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
		a.log.Error("component failed", logger.String("error", runErr.Error()))
	}

	return errors.Join(runErr, a.shutdown())
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")
	}

	// Очередь дренируется после остановки HTTP: новых писем уже не будет.
	if a.dispatcher != nil {
		a.dispatcher.Stop()
	}

	if err := a.closeResources(); err != nil {
		errs = append(errs, err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) closeResources() error {
	var errs []error

	if a.amqpCh != nil {
		if err := a.amqpCh.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close amqp channel: %w", err))
		}
	}
	if a.amqpConn != nil {
		if err := a.amqpConn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close amqp connection: %w", err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
	}

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, a.cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
