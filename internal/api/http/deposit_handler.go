package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/service"
)

type DepositHandler struct {
	depositSvc service.DepositService
}

func NewDepositHandler(depositSvc service.DepositService) *DepositHandler {
	return &DepositHandler{depositSvc: depositSvc}
}

type recordDepositRequest struct {
	UnitNumber  string             `json:"unit_number"`
	Items       []domain.WasteItem `json:"items"`
	DepositDate *time.Time         `json:"deposit_date,omitempty"`
	Notes       string             `json:"notes,omitempty"`
}

func (h *DepositHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if !checkUnitScope(r, req.UnitNumber) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "not allowed for this unit"})
		return
	}

	identity, _ := IdentityFrom(r.Context())
	input := service.RecordDepositInput{
		UnitNumber:  req.UnitNumber,
		Items:       req.Items,
		ProcessedBy: identity.Subject,
		Notes:       req.Notes,
	}
	if req.DepositDate != nil {
		input.DepositDate = *req.DepositDate
	}

	deposit, err := h.depositSvc.RecordDeposit(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, deposit)
}

func (h *DepositHandler) List(w http.ResponseWriter, r *http.Request) {
	unitNumber := r.URL.Query().Get("unit")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	deposits, err := h.depositSvc.ListWasteDeposits(r.Context(), unitNumber, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deposits)
}
