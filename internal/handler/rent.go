package handler

import (
	"net/http"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

type createRentRequest struct {
	StudentID  int64        `json:"studentId"`
	Month      int          `json:"month"`
	Year       int          `json:"year"`
	PaidAmount models.Money `json:"paidAmount"`
	RentType   string       `json:"rentType"`
}

type updateRentRequest struct {
	RentID     int64        `json:"rentId"`
	Month      int          `json:"month"`
	Year       int          `json:"year"`
	PaidAmount models.Money `json:"paidAmount"`
	RentType   string       `json:"rentType"`
}

type rentIDRequest struct {
	RentID int64 `json:"rentId"`
}

type studentIDRequest struct {
	StudentID int64 `json:"studentId"`
}

// GetAllRentals lists payment events with pagination, student-name search and
// status filtering.
func (h *Handler) GetAllRentals(w http.ResponseWriter, r *http.Request) {
	p := parsePageParams(r)
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("rentStatus")

	entries, total, err := h.svc.ListRents(r.Context(), p.limit(), p.offset(), search, status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, paginated(entries, total, p))
}

// GetRentalByID returns a single payment event
func (h *Handler) GetRentalByID(w http.ResponseWriter, r *http.Request) {
	var req rentIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	entry, err := h.svc.RentEntry(r.Context(), req.RentID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, entry)
}

// CreateRental records a payment event for a student's billing period
func (h *Handler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentRequest
	if !h.decode(w, r, &req) {
		return
	}

	entry, err := h.svc.RecordPayment(r.Context(), req.StudentID, req.Month, req.Year, req.PaidAmount, req.RentType)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, map[string]any{
		"message":     "Rent record created successfully",
		"rentDetails": entry,
	})
}

// UpdateRental amends an existing payment event in place
func (h *Handler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	var req updateRentRequest
	if !h.decode(w, r, &req) {
		return
	}

	entry, err := h.svc.AmendPayment(r.Context(), req.RentID, req.Month, req.Year, req.PaidAmount, req.RentType)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"message":     "Rent record updated successfully",
		"rentDetails": entry,
	})
}

// DeleteRental removes a payment event
func (h *Handler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	var req rentIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.svc.RemovePayment(r.Context(), req.RentID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondMessage(w, http.StatusOK, "Rental record deleted successfully")
}

// GetStudentRentDetails returns the full per-student ledger view with
// recomputed running dues.
func (h *Handler) GetStudentRentDetails(w http.ResponseWriter, r *http.Request) {
	var req studentIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	history, err := h.svc.LedgerHistory(r.Context(), req.StudentID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"message":       "Rental details fetched successfully",
		"rentalDetails": history,
	})
}

// GenerateInvoice projects the current-month invoice for a student
func (h *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var req studentIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	inv, err := h.svc.Invoice(r.Context(), req.StudentID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, inv)
}

// GenerateInvoiceXML returns the invoice as an XML document for accounting
// software handoff.
func (h *Handler) GenerateInvoiceXML(w http.ResponseWriter, r *http.Request) {
	var req studentIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	inv, err := h.svc.Invoice(r.Context(), req.StudentID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	doc, err := renderInvoiceXML(inv)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		h.log.Errorf("Failed to write invoice XML: %v", err)
	}
}
