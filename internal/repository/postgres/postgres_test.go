package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banksampah-backend/internal/repository"
)

func TestStore_Atomic(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(50000)

	t.Run("CommitsOnSuccess", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET total_savings = total_savings").
			WithArgs(amount, sqlmock.AnyArg(), "001-COLLECTIVE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE units SET total_savings = total_savings").
			WithArgs(amount, sqlmock.AnyArg(), "001").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = store.Atomic(ctx, func(batch repository.Store) error {
			if err := batch.Accounts().Credit(ctx, "001-COLLECTIVE", amount); err != nil {
				return err
			}
			return batch.Units().AddToSavings(ctx, "001", amount)
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackWhenAWriteFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		store := NewStore(db)
		boom := errors.New("disk full")

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET total_savings = total_savings").
			WithArgs(amount, sqlmock.AnyArg(), "001-COLLECTIVE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE units SET total_savings = total_savings").
			WithArgs(amount, sqlmock.AnyArg(), "001").
			WillReturnError(boom)
		mock.ExpectRollback()

		err = store.Atomic(ctx, func(batch repository.Store) error {
			if err := batch.Accounts().Credit(ctx, "001-COLLECTIVE", amount); err != nil {
				return err
			}
			return batch.Units().AddToSavings(ctx, "001", amount)
		})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnClosureError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		store := NewStore(db)
		boom := errors.New("invariant broken")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err = store.Atomic(ctx, func(batch repository.Store) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NestedCallJoinsTheBatch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		store := NewStore(db)

		// one BEGIN and one COMMIT even though Atomic is entered twice
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET total_savings = total_savings").
			WithArgs(amount, sqlmock.AnyArg(), "001-COLLECTIVE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = store.Atomic(ctx, func(batch repository.Store) error {
			return batch.Atomic(ctx, func(inner repository.Store) error {
				return inner.Accounts().Credit(ctx, "001-COLLECTIVE", amount)
			})
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
