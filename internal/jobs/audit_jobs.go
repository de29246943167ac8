package jobs

import (
	"context"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/logger"
)

// VerifyLedgerConsistency recomputes every account balance from the
// transaction log and compares it against the stored balance and the unit's
// cached mirror. The processors keep these in sync inside atomic batches;
// drift here means a bug or out-of-band writes, and is reported loudly.
func (jr *JobRunner) VerifyLedgerConsistency() {
	jr.runWithRecovery("VerifyLedgerConsistency", func() {
		ctx := context.Background()

		accounts, err := jr.store.Accounts().ListAll(ctx)
		if err != nil {
			logger.Error("Failed to list accounts", "error", err)
			return
		}

		driftCount := 0
		for _, account := range accounts {
			deposits, withdrawals, err := jr.store.Transactions().SumByAccount(ctx, account.AccountNumber)
			if err != nil {
				logger.Error("Failed to sum transactions", "account", account.AccountNumber, "error", err)
				continue
			}

			expected := deposits.Sub(withdrawals)
			if !account.TotalSavings.Equal(expected) {
				driftCount++
				logger.Error("Account balance drifted from transaction log",
					"account", account.AccountNumber,
					"stored", account.TotalSavings.String(),
					"computed", expected.String())
			}
			if !account.TotalWithdrawals.Equal(withdrawals) {
				driftCount++
				logger.Error("Cumulative withdrawals drifted from transaction log",
					"account", account.AccountNumber,
					"stored", account.TotalWithdrawals.String(),
					"computed", withdrawals.String())
			}

			unit, err := jr.store.Units().GetByNumber(ctx, account.UnitNumber)
			if err != nil {
				logger.Error("Failed to load unit for account", "account", account.AccountNumber, "error", err)
				continue
			}
			if account.AccountNumber == domain.CollectiveAccountNumber(unit.UnitNumber) &&
				!unit.TotalSavings.Equal(account.TotalSavings) {
				driftCount++
				logger.Error("Unit savings mirror drifted from account balance",
					"unit", unit.UnitNumber,
					"unit_total", unit.TotalSavings.String(),
					"account_total", account.TotalSavings.String())
			}
		}

		logger.Info("Ledger consistency check finished",
			"accounts_checked", len(accounts), "drift_count", driftCount)
	})
}

// RecountActiveAccounts refreshes each unit's active account count. This is a
// cached convenience figure, not a ledger invariant; failures are logged and
// the next run retries.
func (jr *JobRunner) RecountActiveAccounts() {
	jr.runWithRecovery("RecountActiveAccounts", func() {
		ctx := context.Background()

		units, err := jr.store.Units().List(ctx, true)
		if err != nil {
			logger.Error("Failed to list units", "error", err)
			return
		}

		for _, unit := range units {
			count, err := jr.store.Accounts().CountActiveByUnit(ctx, unit.UnitNumber)
			if err != nil {
				logger.Error("Failed to count accounts for unit", "unit", unit.UnitNumber, "error", err)
				continue
			}
			if err := jr.store.Units().SetActiveAccounts(ctx, unit.UnitNumber, count); err != nil {
				logger.Error("Failed to update unit account count", "unit", unit.UnitNumber, "error", err)
			}
		}

		logger.Info("Recounted active accounts", "units", len(units))
	})
}
