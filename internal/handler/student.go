package handler

import (
	"net/http"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

// GetStudents lists students with pagination
func (h *Handler) GetStudents(w http.ResponseWriter, r *http.Request) {
	p := parsePageParams(r)

	students, total, err := h.svc.Students(r.Context(), p.limit(), p.offset())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, paginated(students, total, p))
}

// GetStudent returns a single student record
func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	var req studentIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	student, err := h.svc.Student(r.Context(), req.StudentID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, student)
}

// CreateStudent registers a new student; image fields carry base64 data URIs
func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	if !h.decode(w, r, &student) {
		return
	}

	if err := h.svc.CreateStudent(r.Context(), &student); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, map[string]any{
		"message":   "Student created successfully",
		"studentId": student.ID,
	})
}

// UpdateStudent applies a partial update to a student record
func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	if !h.decode(w, r, &student) {
		return
	}

	if err := h.svc.UpdateStudent(r.Context(), &student); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"message":   "Record updated",
		"studentId": student.ID,
	})
}

// DeleteStudent removes a student record
func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	var req studentIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.svc.DeleteStudent(r.Context(), req.StudentID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"message":   "Record deleted successfully",
		"studentId": req.StudentID,
	})
}
