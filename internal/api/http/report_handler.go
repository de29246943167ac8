package http

import (
	"net/http"
	"strconv"
	"time"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	filter := domain.TransactionFilter{
		UnitNumber: r.URL.Query().Get("unit"),
	}
	filter.From, filter.To = parseDateRange(r)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	txs, err := h.reportSvc.ListRecentTransactions(r.Context(), filter, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	unitNumber := r.URL.Query().Get("unit")
	from, to := parseDateRange(r)
	if from.IsZero() {
		from = time.Now().AddDate(0, -1, 0)
	}
	if to.IsZero() {
		to = time.Now()
	}

	agg, err := h.reportSvc.GetPeriodAggregate(r.Context(), unitNumber, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

func (h *ReportHandler) UnitBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.reportSvc.ListUnitBalances(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balances)
}

func parseDateRange(r *http.Request) (from, to time.Time) {
	if v := r.URL.Query().Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			// Inclusive end of day
			to = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}
	return from, to
}
