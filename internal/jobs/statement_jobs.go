package jobs

import (
	"context"
	"time"

	"banksampah-backend/internal/logger"
)

// SendMonthlyStatements emails each active unit leader the previous month's
// activity summary. Units without a leader email are skipped.
func (jr *JobRunner) SendMonthlyStatements() {
	jr.runWithRecovery("SendMonthlyStatements", func() {
		ctx := context.Background()

		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		from := monthStart.AddDate(0, -1, 0)
		to := monthStart.Add(-time.Nanosecond)
		period := from.Format("January 2006")

		units, err := jr.store.Units().List(ctx, false)
		if err != nil {
			logger.Error("Failed to list units", "error", err)
			return
		}

		sent := 0
		for _, unit := range units {
			if unit.LeaderEmail == "" {
				continue
			}

			agg, err := jr.reportSvc.GetPeriodAggregate(ctx, unit.UnitNumber, from, to)
			if err != nil {
				logger.Error("Failed to aggregate period for unit", "unit", unit.UnitNumber, "error", err)
				continue
			}
			balance, err := jr.reportSvc.GetUnitBalance(ctx, unit.UnitNumber)
			if err != nil {
				logger.Error("Failed to read unit balance", "unit", unit.UnitNumber, "error", err)
				continue
			}

			if err := jr.emailSvc.SendMonthlyStatement(ctx, unit.LeaderEmail, unit.LeaderName, unit.UnitNumber, period, agg, balance); err != nil {
				logger.Error("Failed to send statement", "unit", unit.UnitNumber, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Monthly statements sent", "period", period, "sent", sent, "units", len(units))
	})
}
