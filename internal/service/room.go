package service

import (
	"context"
	"fmt"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

// Rooms returns all rooms
func (s *Service) Rooms(ctx context.Context) ([]models.Room, error) {
	return s.repo.ListRooms(ctx)
}

// CreateRoom adds a room to the inventory
func (s *Service) CreateRoom(ctx context.Context, m *models.Room) error {
	if m.RoomNumber == "" {
		return fmt.Errorf("%w: roomNumber is required", ErrInvalidArgument)
	}
	if m.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidArgument)
	}

	exists, err := s.repo.RoomExists(ctx, m.RoomNumber)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: room number %s already exists", ErrConflict, m.RoomNumber)
	}

	if err := s.repo.CreateRoom(ctx, m); err != nil {
		return err
	}
	s.log.Infof("Room created: %s", m.RoomNumber)
	return nil
}

// UpdateRoom applies a partial update to a room record
func (s *Service) UpdateRoom(ctx context.Context, m *models.Room) error {
	if m.ID <= 0 {
		return fmt.Errorf("%w: roomId is required", ErrInvalidArgument)
	}

	existing, err := s.repo.FindRoomByID(ctx, m.ID)
	if err != nil {
		return err
	}

	if m.RoomNumber == "" {
		m.RoomNumber = existing.RoomNumber
	}
	if m.Capacity <= 0 {
		m.Capacity = existing.Capacity
	}
	if m.Occupied < 0 {
		m.Occupied = existing.Occupied
	}
	if m.Description == "" {
		m.Description = existing.Description
	}

	if err := s.repo.UpdateRoom(ctx, m); err != nil {
		return err
	}
	s.log.Infof("Room %d updated", m.ID)
	return nil
}

// DeleteRoom removes a room record
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: roomId is required", ErrInvalidArgument)
	}
	if err := s.repo.DeleteRoom(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Room %d deleted", id)
	return nil
}
