package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SulimanFURC/BE-HMS/internal/ledger"
	"github.com/SulimanFURC/BE-HMS/internal/models"
)

const rentColumns = `id, student_id, month, year, basic_rent, paid_amount, dues, status, COALESCE(rent_type, ''), created_at`

func scanRentEntry(row interface{ Scan(...any) error }) (*models.RentEntry, error) {
	e := &models.RentEntry{}
	err := row.Scan(&e.ID, &e.StudentID, &e.Month, &e.Year, &e.BasicRent,
		&e.PaidAmount, &e.Dues, &e.Status, &e.RentType, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// lockStudentRent takes a row lock on the student and returns the current
// basic rent. The lock serializes concurrent ledger writes per student so two
// payments for the same period cannot both read the same prior state.
func lockStudentRent(tx *sql.Tx, studentID int64) (models.Money, error) {
	var basicRent models.Money
	err := tx.QueryRow(`SELECT basic_rent FROM hms.students WHERE id = $1 FOR UPDATE`, studentID).
		Scan(&basicRent)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock student: %w", err)
	}
	return basicRent, nil
}

// previousDues returns the stored dues of the latest entry for the period
// immediately before (month, year), or zero when no such entry exists.
func previousDues(tx *sql.Tx, studentID int64, month, year int) (models.Money, error) {
	prevMonth, prevYear := ledger.PreviousPeriod(month, year)
	var dues models.Money
	err := tx.QueryRow(`
		SELECT dues FROM hms.rent
		WHERE student_id = $1 AND month = $2 AND year = $3
		ORDER BY id DESC LIMIT 1`,
		studentID, prevMonth, prevYear).Scan(&dues)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read previous dues: %w", err)
	}
	return dues, nil
}

// paidForPeriod sums paid amounts across all entries for (studentID, month,
// year), excluding excludeID when non-zero.
func paidForPeriod(tx *sql.Tx, studentID int64, month, year int, excludeID int64) (models.Money, error) {
	var paid models.Money
	err := tx.QueryRow(`
		SELECT COALESCE(SUM(paid_amount), 0) FROM hms.rent
		WHERE student_id = $1 AND month = $2 AND year = $3 AND id <> $4`,
		studentID, month, year, excludeID).Scan(&paid)
	if err != nil {
		return 0, fmt.Errorf("failed to sum period payments: %w", err)
	}
	return paid, nil
}

// CreateRentEntry records a payment event. The read-then-write sequence —
// basic rent snapshot, previous period dues, sibling payments, insert — runs
// inside one transaction holding a lock on the student row.
func (r *Repository) CreateRentEntry(ctx context.Context, studentID int64, month, year int, paid models.Money, rentType string) (*models.RentEntry, error) {
	var entry *models.RentEntry
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		basicRent, err := lockStudentRent(tx, studentID)
		if err != nil {
			return err
		}
		prevDues, err := previousDues(tx, studentID, month, year)
		if err != nil {
			return err
		}
		alreadyPaid, err := paidForPeriod(tx, studentID, month, year, 0)
		if err != nil {
			return err
		}

		dues, status := ledger.Accrue(basicRent, prevDues, alreadyPaid+paid)
		entry = &models.RentEntry{
			StudentID:  studentID,
			Month:      month,
			Year:       year,
			BasicRent:  basicRent,
			PaidAmount: paid,
			Dues:       dues,
			Status:     status,
			RentType:   rentType,
		}

		query := `
			INSERT INTO hms.rent (student_id, month, year, basic_rent, paid_amount, dues, status, rent_type, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
			RETURNING id, created_at`
		if err := tx.QueryRow(query, studentID, month, year, basicRent, paid, dues, status, rentType).
			Scan(&entry.ID, &entry.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert rent entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// AmendRentEntry recomputes and overwrites an existing payment event in
// place. Sibling payments are summed excluding the amended entry. Later
// periods are deliberately not recomputed; their stored dues stay stale until
// their own next payment event.
func (r *Repository) AmendRentEntry(ctx context.Context, entryID int64, month, year int, paid models.Money, rentType string) (*models.RentEntry, error) {
	var entry *models.RentEntry
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var studentID int64
		err := tx.QueryRow(`SELECT student_id FROM hms.rent WHERE id = $1 FOR UPDATE`, entryID).
			Scan(&studentID)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock rent entry: %w", err)
		}

		basicRent, err := lockStudentRent(tx, studentID)
		if err != nil {
			return err
		}
		prevDues, err := previousDues(tx, studentID, month, year)
		if err != nil {
			return err
		}
		alreadyPaid, err := paidForPeriod(tx, studentID, month, year, entryID)
		if err != nil {
			return err
		}

		dues, status := ledger.Accrue(basicRent, prevDues, alreadyPaid+paid)
		entry = &models.RentEntry{
			ID:         entryID,
			StudentID:  studentID,
			Month:      month,
			Year:       year,
			BasicRent:  basicRent,
			PaidAmount: paid,
			Dues:       dues,
			Status:     status,
			RentType:   rentType,
		}

		query := `
			UPDATE hms.rent
			SET month = $1, year = $2, basic_rent = $3, paid_amount = $4, dues = $5, status = $6, rent_type = $7
			WHERE id = $8
			RETURNING created_at`
		if err := tx.QueryRow(query, month, year, basicRent, paid, dues, status, rentType, entryID).
			Scan(&entry.CreatedAt); err != nil {
			return fmt.Errorf("failed to update rent entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteRentEntry removes a payment event. No cascade: other periods keep
// their stored dues.
func (r *Repository) DeleteRentEntry(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hms.rent WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rent entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete rent entry: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindRentEntryByID retrieves a single payment event
func (r *Repository) FindRentEntryByID(ctx context.Context, id int64) (*models.RentEntry, error) {
	query := `SELECT ` + rentColumns + ` FROM hms.rent WHERE id = $1`
	e, err := scanRentEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find rent entry: %w", err)
	}
	return e, nil
}

// RentEntriesByStudent returns all payment events for a student ordered by
// (year, month, id) ascending, the order the accrual replay expects.
func (r *Repository) RentEntriesByStudent(ctx context.Context, studentID int64) ([]models.RentEntry, error) {
	query := `SELECT ` + rentColumns + ` FROM hms.rent WHERE student_id = $1 ORDER BY year, month, id`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rent entries: %w", err)
	}
	defer rows.Close()

	entries := []models.RentEntry{}
	for rows.Next() {
		e, err := scanRentEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rent entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rent entries: %w", err)
	}
	return entries, nil
}

// ListRentEntries returns a page of payment events joined with student names,
// newest first, optionally filtered by student-name search and rent status.
func (r *Repository) ListRentEntries(ctx context.Context, limit, offset int, search, status string) ([]models.RentEntry, int, error) {
	where := `WHERE ($1 = '' OR s.name ILIKE '%' || $1 || '%') AND ($2 = '' OR r.status = $2)`

	var total int
	countQuery := `SELECT COUNT(*) FROM hms.rent r JOIN hms.students s ON s.id = r.student_id ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, search, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count rent entries: %w", err)
	}

	query := `
		SELECT r.id, r.student_id, r.month, r.year, r.basic_rent, r.paid_amount,
			r.dues, r.status, COALESCE(r.rent_type, ''), r.created_at, s.name
		FROM hms.rent r
		JOIN hms.students s ON s.id = r.student_id ` + where + `
		ORDER BY r.year DESC, r.month DESC, r.id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, search, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rent entries: %w", err)
	}
	defer rows.Close()

	entries := []models.RentEntry{}
	for rows.Next() {
		e := models.RentEntry{}
		if err := rows.Scan(&e.ID, &e.StudentID, &e.Month, &e.Year, &e.BasicRent,
			&e.PaidAmount, &e.Dues, &e.Status, &e.RentType, &e.CreatedAt, &e.StudentName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan rent entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read rent entries: %w", err)
	}
	return entries, total, nil
}
