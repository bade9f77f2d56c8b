package handler

import (
	"net/http"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

type expenseIDRequest struct {
	ExpenseID int64 `json:"expenseId"`
}

type dateRangeRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// GetExpenses lists expenses with pagination
func (h *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	p := parsePageParams(r)

	expenses, total, err := h.svc.Expenses(r.Context(), p.limit(), p.offset())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, paginated(expenses, total, p))
}

// GetExpense returns a single expense record
func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	expense, err := h.svc.Expense(r.Context(), req.ExpenseID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, expense)
}

// CreateExpense records a new expense; the attachment field may carry a
// base64 data URI.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if !h.decode(w, r, &expense) {
		return
	}

	if err := h.svc.CreateExpense(r.Context(), &expense); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, map[string]any{
		"message": "Expense created successfully",
		"expense": expense,
	})
}

// UpdateExpense applies a partial update to an expense record
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if !h.decode(w, r, &expense) {
		return
	}

	if err := h.svc.UpdateExpense(r.Context(), &expense); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"message": "Expense updated successfully",
		"expense": expense,
	})
}

// DeleteExpense removes an expense record
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.svc.DeleteExpense(r.Context(), req.ExpenseID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondMessage(w, http.StatusOK, "Expense deleted successfully")
}

// ExpensesByDateRange returns expenses inside an inclusive date window with
// their summed amount.
func (h *Handler) ExpensesByDateRange(w http.ResponseWriter, r *http.Request) {
	var req dateRangeRequest
	if !h.decode(w, r, &req) {
		return
	}

	expenses, total, err := h.svc.ExpensesByDateRange(r.Context(), req.StartDate, req.EndDate)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"data":        expenses,
		"totalAmount": total,
	})
}
