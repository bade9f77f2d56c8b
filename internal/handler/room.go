package handler

import (
	"net/http"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

type roomIDRequest struct {
	RoomID int64 `json:"roomId"`
}

// GetRooms lists all rooms
func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.svc.Rooms(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, rooms)
}

// CreateRoom adds a room to the inventory
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var room models.Room
	if !h.decode(w, r, &room) {
		return
	}

	if err := h.svc.CreateRoom(r.Context(), &room); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, map[string]any{
		"message": "Room created successfully",
		"room":    room,
	})
}

// UpdateRoom applies a partial update to a room record
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var room models.Room
	if !h.decode(w, r, &room) {
		return
	}

	if err := h.svc.UpdateRoom(r.Context(), &room); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"message": "Room updated successfully",
		"room":    room,
	})
}

// DeleteRoom removes a room record
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	var req roomIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.svc.DeleteRoom(r.Context(), req.RoomID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondMessage(w, http.StatusOK, "Room deleted successfully")
}
