package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"communityevents/internal/domain"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewRegistrationService creates a RegistrationService. emailService may be
// nil; confirmation emails are then skipped entirely.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

func (s *registrationService) Register(ctx context.Context, reg *domain.Registration) error {
	if reg.PurchaserName == "" || reg.Email == "" || reg.Tickets == 0 {
		return fmt.Errorf("%w: purchaser_name, email, tickets are required", domain.ErrInvalidInput)
	}
	if reg.Tickets < 0 {
		return fmt.Errorf("%w: tickets must be a positive integer", domain.ErrInvalidInput)
	}

	// Ensure the event exists. A concurrent delete between this check and the
	// insert surfaces as a foreign-key violation, which the repository maps
	// back to ErrNotFound.
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("create registration: %w", err)
	}

	s.sendConfirmation(ctx, event, reg)
	return nil
}

// sendConfirmation emails the purchaser best-effort: a failure is logged and
// never affects the registration outcome.
func (s *registrationService) sendConfirmation(ctx context.Context, event *domain.Event, reg *domain.Registration) {
	if s.emailService == nil {
		return
	}
	title := ""
	if event.Title != nil {
		title = *event.Title
	}
	data := &domain.RegistrationConfirmationEmailData{
		Email:         reg.Email,
		PurchaserName: reg.PurchaserName,
		EventTitle:    title,
		Tickets:       reg.Tickets,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "confirmation email not sent", "event_id", reg.EventID, "err", err)
	}
}
