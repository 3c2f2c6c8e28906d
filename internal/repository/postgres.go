package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const pgUniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
