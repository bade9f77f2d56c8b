package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

const roomColumns = `id, room_number, capacity, occupied, COALESCE(description, ''), created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }) (*models.Room, error) {
	m := &models.Room{}
	err := row.Scan(&m.ID, &m.RoomNumber, &m.Capacity, &m.Occupied,
		&m.Description, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateRoom inserts a new room
func (r *Repository) CreateRoom(ctx context.Context, m *models.Room) error {
	query := `
		INSERT INTO hms.rooms (room_number, capacity, occupied, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, m.RoomNumber, m.Capacity, m.Occupied, m.Description).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// ListRooms returns all rooms ordered by room number
func (r *Repository) ListRooms(ctx context.Context) ([]models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM hms.rooms ORDER BY room_number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	rooms := []models.Room{}
	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rooms: %w", err)
	}
	return rooms, nil
}

// RoomExists reports whether a room with the given room number exists
func (r *Repository) RoomExists(ctx context.Context, roomNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM hms.rooms WHERE room_number = $1)`, roomNumber).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check room: %w", err)
	}
	return exists, nil
}

// FindRoomByID retrieves a room by id
func (r *Repository) FindRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM hms.rooms WHERE id = $1`
	m, err := scanRoom(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return m, nil
}

// UpdateRoom overwrites a room record
func (r *Repository) UpdateRoom(ctx context.Context, m *models.Room) error {
	query := `
		UPDATE hms.rooms
		SET room_number = $1, capacity = $2, occupied = $3, description = $4,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, m.RoomNumber, m.Capacity, m.Occupied, m.Description, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRoom removes a room record
func (r *Repository) DeleteRoom(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hms.rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
