package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"parcel-service/internal/pkg/errs"
	"parcel-service/pkg/tx"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation     = "23505"
	PgErrForeignKeyViolation = "23503"
	PgErrCheckViolation      = "23514"
	PgErrQueryCanceled       = "57014"
	PgErrLockNotAvailable    = "55P03"
	PgErrAdminShutdown       = "57P01"
	PgErrTooManyConnections  = "53300"

	pgClassConnectionException = "08"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsUnavailable сообщает, что хранилище не ответило вовремя или соединение потеряно.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgconn.Timeout(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrQueryCanceled, PgErrLockNotAvailable, PgErrAdminShutdown, PgErrTooManyConnections:
			return true
		}
		return strings.HasPrefix(pgErr.Code, pgClassConnectionException)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// Unexpected оборачивает ошибку драйвера: недоступность хранилища получает категорию
// ErrStoreUnavailable, откат из-за конкурентной транзакции - ErrConflict.
func Unexpected(op string, err error) error {
	if IsUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, errs.ErrStoreUnavailable, err)
	}
	if tx.IsSerializationFailure(err) {
		return fmt.Errorf("%s: %w: %w", op, errs.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
