package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"banksampah-backend/internal/service"
)

type WithdrawalHandler struct {
	withdrawalSvc service.WithdrawalService
}

func NewWithdrawalHandler(withdrawalSvc service.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalSvc: withdrawalSvc}
}

type recordWithdrawalRequest struct {
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

func (h *WithdrawalHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordWithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	// The collective account number embeds the unit number; scope operators
	// the same way deposits are scoped.
	unitNumber := strings.TrimSuffix(req.AccountNumber, "-COLLECTIVE")
	if !checkUnitScope(r, unitNumber) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "not allowed for this unit"})
		return
	}

	identity, _ := IdentityFrom(r.Context())
	tx, err := h.withdrawalSvc.RecordWithdrawal(r.Context(), service.RecordWithdrawalInput{
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Description:   req.Description,
		ProcessedBy:   identity.Subject,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}
