package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all HTTP routes. Everything under /api/v1 except login runs
// behind the auth middleware.
func NewRouter(
	authHandler *AuthHandler,
	unitHandler *UnitHandler,
	depositHandler *DepositHandler,
	withdrawalHandler *WithdrawalHandler,
	reportHandler *ReportHandler,
	authMiddleware *AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Handler)

	api.HandleFunc("/units", unitHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/units", RequireAdmin(unitHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/units/{unitNumber}", unitHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/units/{unitNumber}", RequireAdmin(unitHandler.Update)).Methods(http.MethodPut)
	api.HandleFunc("/units/{unitNumber}", RequireAdmin(unitHandler.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/units/{unitNumber}/deactivate", RequireAdmin(unitHandler.Deactivate)).Methods(http.MethodPost)
	api.HandleFunc("/units/{unitNumber}/balance", unitHandler.Balance).Methods(http.MethodGet)

	api.HandleFunc("/deposits", depositHandler.Record).Methods(http.MethodPost)
	api.HandleFunc("/deposits", depositHandler.List).Methods(http.MethodGet)

	api.HandleFunc("/withdrawals", withdrawalHandler.Record).Methods(http.MethodPost)

	api.HandleFunc("/transactions", reportHandler.Transactions).Methods(http.MethodGet)
	api.HandleFunc("/reports/summary", reportHandler.Summary).Methods(http.MethodGet)
	api.HandleFunc("/reports/units", reportHandler.UnitBalances).Methods(http.MethodGet)

	return r
}
