package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/lib/pq"

	"banksampah-backend/internal/domain"
)

// mapError translates driver-level failures into the domain error taxonomy so
// callers can distinguish not-found, retryable conflicts and transient outages.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if errors.Is(err, driver.ErrBadConn) {
		return domain.ErrStorageUnavailable
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return domain.ErrConflict
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return domain.ErrConflict
		case "08000", "08001", "08003", "08006", "53300", "57P03":
			// connection failures, too_many_connections, cannot_connect_now
			return domain.ErrStorageUnavailable
		}
	}
	return err
}

// requireRow turns a zero-rows-affected update into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
