package services

import (
	"context"
	"errors"
	"fmt"

	"communityevents/internal/domain"
)

type adminService struct {
	eventRepo domain.EventRepository
}

// NewAdminService creates an AdminService backed by the given event repository.
func NewAdminService(eventRepo domain.EventRepository) domain.AdminService {
	return &adminService{
		eventRepo: eventRepo,
	}
}

// CreateEvent inserts the event as-is. Fields the caller left nil are stored
// as NULL; no validation beyond the storage constraints is applied.
func (s *adminService) CreateEvent(ctx context.Context, e *domain.Event) (int64, error) {
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return e.ID, nil
}

// UpdateEvent overwrites every column of the matched row, writing NULL for
// nil fields. This is a full replace, not a partial patch.
func (s *adminService) UpdateEvent(ctx context.Context, id int64, e *domain.Event) error {
	if err := s.eventRepo.Update(ctx, id, e); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *adminService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrDeleteBlocked) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
