package service

import (
	"context"
	"errors"
	"time"

	"github.com/SulimanFURC/BE-HMS/internal/config"
	"github.com/SulimanFURC/BE-HMS/internal/models"
	"github.com/SulimanFURC/BE-HMS/internal/repository"
	"github.com/sirupsen/logrus"
)

// Business-rule failures, mapped to HTTP statuses by the handler layer.
// Storage NotFound surfaces as repository.ErrNotFound and maps to 404.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

// Uploader stores an attachment with an external object store and returns its
// public URL. Uploads run before the owning row is committed.
type Uploader interface {
	Upload(ctx context.Context, dataURI, folder, filename string) (string, error)
}

// ReminderMailer delivers dues reminder mail to a student
type ReminderMailer interface {
	SendDuesReminder(to, name string, dues models.Money) error
}

// Service handles business logic
type Service struct {
	repo     *repository.Repository
	log      *logrus.Logger
	config   *config.Config
	uploader Uploader
	mailer   ReminderMailer

	// now is the clock source; injected so invoice generation stays
	// deterministic under test.
	now func() time.Time
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, uploader Uploader, mailer ReminderMailer) *Service {
	return &Service{
		repo:     repo,
		log:      log,
		config:   cfg,
		uploader: uploader,
		mailer:   mailer,
		now:      time.Now,
	}
}
