package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/joaovmb/team-manager/middleware"
	"github.com/joaovmb/team-manager/models"
	"github.com/joaovmb/team-manager/reports"
	"github.com/joaovmb/team-manager/services"
)

type TransactionHandler struct {
	transactionService services.TransactionService
}

func NewTransactionHandler(transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, err.Error())
		return
	}

	transactions, err := h.transactionService.List(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"transactions": transactions}, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, err.Error())
		return
	}

	var input services.TransactionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	transaction, err := h.transactionService.Create(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"transaction": transaction}, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, err.Error())
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var input services.TransactionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	transaction, err := h.transactionService.Update(r.Context(), userID, id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"transaction": transaction}, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, err.Error())
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.transactionService.Delete(r.Context(), userID, id); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportCSV streams the finance report as a download. Filters: ?type=
// (income|expense) and ?month= (1-12, year-agnostic like the finance
// screen's dropdown).
func (h *TransactionHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, err.Error())
		return
	}

	typ := models.TransactionType(r.URL.Query().Get("type"))
	if typ != "" && !typ.Valid() {
		badRequestResponse(w, fmt.Errorf("unknown transaction type %q", typ))
		return
	}
	var month time.Month
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			badRequestResponse(w, fmt.Errorf("month must be between 1 and 12, got %q", monthStr))
			return
		}
		month = time.Month(m)
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reports.ExportFileName(time.Now())))

	if err := h.transactionService.ExportCSV(r.Context(), userID, typ, month, w); err != nil {
		// Headers are gone at this point; all we can do is log.
		serverErrorResponse(w, err)
	}
}
