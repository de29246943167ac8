package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"banksampah-backend/internal/service"
)

type UnitHandler struct {
	unitSvc   service.UnitService
	reportSvc service.ReportService
}

func NewUnitHandler(unitSvc service.UnitService, reportSvc service.ReportService) *UnitHandler {
	return &UnitHandler{unitSvc: unitSvc, reportSvc: reportSvc}
}

func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUnitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	unit, err := h.unitSvc.CreateUnit(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, unit)
}

func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	units, err := h.unitSvc.ListUnits(r.Context(), includeInactive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func (h *UnitHandler) Get(w http.ResponseWriter, r *http.Request) {
	unitNumber := mux.Vars(r)["unitNumber"]
	unit, err := h.unitSvc.GetUnit(r.Context(), unitNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, unit)
}

func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	unitNumber := mux.Vars(r)["unitNumber"]

	var input service.UpdateUnitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	unit, err := h.unitSvc.UpdateUnit(r.Context(), unitNumber, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, unit)
}

// Delete hard-deletes a unit without ledger history and responds 409 when
// transactions reference it; deactivation is the path for units with history.
func (h *UnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	unitNumber := mux.Vars(r)["unitNumber"]
	if err := h.unitSvc.DeleteUnit(r.Context(), unitNumber); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *UnitHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	unitNumber := mux.Vars(r)["unitNumber"]
	if err := h.unitSvc.DeactivateUnit(r.Context(), unitNumber); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *UnitHandler) Balance(w http.ResponseWriter, r *http.Request) {
	unitNumber := mux.Vars(r)["unitNumber"]
	balance, err := h.reportSvc.GetUnitBalance(r.Context(), unitNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"unit_number": unitNumber,
		"balance":     balance,
	})
}
