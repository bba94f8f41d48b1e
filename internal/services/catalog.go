package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"communityevents/internal/clock"
	"communityevents/internal/domain"
)

// highlightCount is the number of soonest-starting upcoming events surfaced
// for promotional display.
const highlightCount = 3

type catalogService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	categoryRepo     domain.CategoryRepository
	clk              clock.Clock
}

// NewCatalogService creates a CatalogService with the given repositories and
// clock. The clock supplies "now" for the time-partitioned listings and the
// derived phase labels.
func NewCatalogService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	categoryRepo domain.CategoryRepository,
	clk clock.Clock,
) domain.CatalogService {
	return &catalogService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		categoryRepo:     categoryRepo,
		clk:              clk,
	}
}

func (s *catalogService) HomeListing(ctx context.Context) ([]*domain.EventListItem, error) {
	now := s.clk.Now()
	items, err := s.eventRepo.ListUpcoming(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	annotatePhase(items, now)
	return items, nil
}

func (s *catalogService) PastListing(ctx context.Context) ([]*domain.EventListItem, error) {
	now := s.clk.Now()
	items, err := s.eventRepo.ListPast(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list past events: %w", err)
	}
	annotatePhase(items, now)
	return items, nil
}

func (s *catalogService) Highlights(ctx context.Context) ([]*domain.EventHighlight, error) {
	highlights, err := s.eventRepo.ListHighlights(ctx, s.clk.Now(), highlightCount)
	if err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}
	return highlights, nil
}

func (s *catalogService) Search(ctx context.Context, filter domain.SearchFilter) (*domain.SearchResult, error) {
	items, err := s.eventRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	if items == nil {
		items = []*domain.EventListItem{}
	}
	annotatePhase(items, s.clk.Now())
	return &domain.SearchResult{Count: len(items), Results: items}, nil
}

func (s *catalogService) EventDetail(ctx context.Context, id int64) (*domain.EventDetail, error) {
	detail, err := s.eventRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event detail: %w", err)
	}

	regs, err := s.registrationRepo.ListByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	detail.Registrations = regs
	return detail, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// annotatePhase stamps the derived upcoming/past label onto each item.
func annotatePhase(items []*domain.EventListItem, now time.Time) {
	for _, item := range items {
		item.Phase = domain.Phase(item.EndDatetime, now)
	}
}
