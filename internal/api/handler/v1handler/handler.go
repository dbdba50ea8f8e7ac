// Package v1handler implements the version 1 HTTP handlers of the expense API.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"ledger/internal/ledger"
	"ledger/pkg/logger"
	"ledger/pkg/serrors"
)

type Deps struct {
	Ledger ledger.Ledger
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers all v1 endpoints on the given mux. Every route except the
// category listing requires a valid bearer token.
func (h *Handler) Routes(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("GET /v1/categories", h.ListCategories)

	mux.Handle("POST /v1/expenses", sec.Bearer(http.HandlerFunc(h.CreateExpense)))
	mux.Handle("GET /v1/expenses", sec.Bearer(http.HandlerFunc(h.ListExpenses)))
	mux.Handle("GET /v1/expenses/{id}", sec.Bearer(http.HandlerFunc(h.GetExpense)))
	mux.Handle("DELETE /v1/expenses/{id}", sec.Bearer(http.HandlerFunc(h.DeleteExpense)))
	mux.Handle("GET /v1/summary", sec.Bearer(http.HandlerFunc(h.GetSummary)))
	mux.Handle("GET /v1/reports/{month}", sec.Bearer(http.HandlerFunc(h.GetReport)))
}

// errorResponse is the JSON body returned for every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps semantic error kinds to HTTP statuses. Unrecognized errors
// become a 500 with a generic body so internals do not leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "internal error handling request", zap.Error(err))
		msg = "internal server error"
	}

	writeJSON(w, status, errorResponse{Error: msg})
}
