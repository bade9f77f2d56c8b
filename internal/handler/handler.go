package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SulimanFURC/BE-HMS/internal/repository"
	"github.com/SulimanFURC/BE-HMS/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			h.log.Errorf("Failed to encode response: %v", err)
		}
	}
}

func (h *Handler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respond(w, status, map[string]any{"message": message, "statusCode": status})
}

// respondError maps business-rule failures to client statuses. Anything else
// is a storage or integration failure: logged with full detail, reported
// generically.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrConflict):
		h.respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		h.respondMessage(w, http.StatusNotFound, err.Error())
	default:
		h.log.Errorf("Internal error: %v", err)
		h.respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
