package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/SulimanFURC/BE-HMS/internal/models"
	"github.com/google/uuid"
)

// uploadIfData uploads base64 data-URI content to the object store and
// returns the hosted URL. Values that are already URLs pass through. Uploads
// happen before the owning row is written so a stored record never points at
// an attachment that failed to upload.
func (s *Service) uploadIfData(ctx context.Context, value, folder, kind string) (string, error) {
	if value == "" || !strings.HasPrefix(value, "data:") {
		return value, nil
	}
	filename := fmt.Sprintf("%s-%s.jpg", kind, uuid.NewString())
	url, err := s.uploader.Upload(ctx, value, folder, filename)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", kind, err)
	}
	return url, nil
}

// Students returns a page of student records
func (s *Service) Students(ctx context.Context, limit, offset int) ([]models.Student, int, error) {
	total, err := s.repo.CountStudents(ctx)
	if err != nil {
		return nil, 0, err
	}
	students, err := s.repo.ListStudents(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// Student returns a single student record
func (s *Service) Student(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: studentId is required", ErrInvalidArgument)
	}
	return s.repo.FindStudentByID(ctx, id)
}

// CreateStudent registers a new student. Images arrive as base64 data URIs
// and are uploaded before the record is inserted.
func (s *Service) CreateStudent(ctx context.Context, st *models.Student) error {
	if st.Name == "" || st.CNIC == "" || st.AdmissionDate == "" || st.BasicRent <= 0 ||
		st.ContactNo == "" || st.RoomNumber == "" {
		return fmt.Errorf("%w: name, cnic, admissionDate, basicRent, contactNo and roomNumber are required", ErrInvalidArgument)
	}

	exists, err := s.repo.RoomExists(ctx, st.RoomNumber)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: room number %s does not exist", ErrInvalidArgument, st.RoomNumber)
	}

	if st.Picture, err = s.uploadIfData(ctx, st.Picture, "students", "picture"); err != nil {
		return err
	}
	if st.CNICFront, err = s.uploadIfData(ctx, st.CNICFront, "students", "cnic-front"); err != nil {
		return err
	}
	if st.CNICBack, err = s.uploadIfData(ctx, st.CNICBack, "students", "cnic-back"); err != nil {
		return err
	}

	if err := s.repo.CreateStudent(ctx, st); err != nil {
		return err
	}

	s.log.Infof("Student created: %s (id %d)", st.Name, st.ID)
	return nil
}

// UpdateStudent applies a partial update: empty fields keep their stored
// values, and newly provided images replace the old URLs.
func (s *Service) UpdateStudent(ctx context.Context, st *models.Student) error {
	if st.ID <= 0 {
		return fmt.Errorf("%w: studentId is required", ErrInvalidArgument)
	}

	existing, err := s.repo.FindStudentByID(ctx, st.ID)
	if err != nil {
		return err
	}

	if st.RoomNumber != "" && st.RoomNumber != existing.RoomNumber {
		exists, err := s.repo.RoomExists(ctx, st.RoomNumber)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: room number %s does not exist", ErrInvalidArgument, st.RoomNumber)
		}
	}

	merge := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	st.Name = merge(st.Name, existing.Name)
	st.CNIC = merge(st.CNIC, existing.CNIC)
	st.AdmissionDate = merge(st.AdmissionDate, existing.AdmissionDate)
	st.ContactNo = merge(st.ContactNo, existing.ContactNo)
	st.SecondaryContactNo = merge(st.SecondaryContactNo, existing.SecondaryContactNo)
	st.BloodGroup = merge(st.BloodGroup, existing.BloodGroup)
	st.Address = merge(st.Address, existing.Address)
	st.Email = merge(st.Email, existing.Email)
	st.RoomNumber = merge(st.RoomNumber, existing.RoomNumber)
	st.Description = merge(st.Description, existing.Description)
	if st.BasicRent <= 0 {
		st.BasicRent = existing.BasicRent
	}
	if st.SecurityFee <= 0 {
		st.SecurityFee = existing.SecurityFee
	}

	if st.Picture, err = s.uploadIfData(ctx, merge(st.Picture, existing.Picture), "students", "picture"); err != nil {
		return err
	}
	if st.CNICFront, err = s.uploadIfData(ctx, merge(st.CNICFront, existing.CNICFront), "students", "cnic-front"); err != nil {
		return err
	}
	if st.CNICBack, err = s.uploadIfData(ctx, merge(st.CNICBack, existing.CNICBack), "students", "cnic-back"); err != nil {
		return err
	}

	if err := s.repo.UpdateStudent(ctx, st); err != nil {
		return err
	}

	s.log.Infof("Student %d updated", st.ID)
	return nil
}

// DeleteStudent removes a student and, through the schema, their rent history
func (s *Service) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: studentId is required", ErrInvalidArgument)
	}
	if err := s.repo.DeleteStudent(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Student %d deleted", id)
	return nil
}
