package service

import (
	"context"
	"fmt"
	"time"

	"github.com/you/padel-club/internal/domain"
	"github.com/you/padel-club/internal/schedule"
)

// CourtSvc owns court administration and slot availability.
type CourtSvc struct {
	courts       CourtStore
	reservations ReservationStore
}

func NewCourtSvc(courts CourtStore, reservations ReservationStore) *CourtSvc {
	return &CourtSvc{courts: courts, reservations: reservations}
}

func validateCourt(c *domain.Court) error {
	if c.Name == "" {
		return fmt.Errorf("%w: court name is required", domain.ErrValidation)
	}
	if !c.Surface.Valid() {
		return fmt.Errorf("%w: unknown surface %q", domain.ErrValidation, c.Surface)
	}
	if c.TariffPerHour < 0 {
		return fmt.Errorf("%w: tariff must not be negative", domain.ErrValidation)
	}
	if c.PlayerCapacity < domain.MinPlayerCapacity || c.PlayerCapacity > domain.MaxPlayerCapacity {
		return fmt.Errorf("%w: player capacity must be between %d and %d",
			domain.ErrValidation, domain.MinPlayerCapacity, domain.MaxPlayerCapacity)
	}
	return nil
}

func (s *CourtSvc) Create(ctx context.Context, in domain.Court) (*domain.Court, error) {
	if in.PlayerCapacity == 0 {
		in.PlayerCapacity = 4
	}
	if in.Surface == "" {
		in.Surface = domain.SurfaceGlass
	}
	if err := validateCourt(&in); err != nil {
		return nil, err
	}
	in.Active = true
	if err := s.courts.Create(ctx, &in); err != nil {
		return nil, fmt.Errorf("create court: %w", err)
	}
	return &in, nil
}

func (s *CourtSvc) Get(ctx context.Context, id string) (*domain.Court, error) {
	return s.courts.ByID(ctx, id)
}

func (s *CourtSvc) List(ctx context.Context, page, size int32, nameQuery string) ([]domain.Court, error) {
	return s.courts.List(ctx, page, size, nameQuery)
}

func (s *CourtSvc) Update(ctx context.Context, in domain.Court) (*domain.Court, error) {
	current, err := s.courts.ByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	in.CreatedAt = current.CreatedAt
	if err := validateCourt(&in); err != nil {
		return nil, err
	}
	if err := s.courts.Update(ctx, &in); err != nil {
		return nil, fmt.Errorf("update court: %w", err)
	}
	return &in, nil
}

func (s *CourtSvc) Deactivate(ctx context.Context, id string) error {
	return s.courts.Deactivate(ctx, id)
}

// IsAvailable reports whether the court is free for [start, end) on the
// given date: the court must be active and no confirmed reservation may
// overlap the half-open interval.
func (s *CourtSvc) IsAvailable(ctx context.Context, courtID string, date time.Time, start, end schedule.TimeOfDay) (bool, error) {
	court, err := s.courts.ByID(ctx, courtID)
	if err != nil {
		return false, err
	}
	return s.courtAvailable(ctx, court, date, start, end)
}

func (s *CourtSvc) courtAvailable(ctx context.Context, court *domain.Court, date time.Time, start, end schedule.TimeOfDay) (bool, error) {
	if !court.Active {
		return false, nil
	}
	existing, err := s.reservations.ConfirmedByCourtDate(ctx, court.ID, domain.DateOnly(date))
	if err != nil {
		return false, fmt.Errorf("load confirmed reservations: %w", err)
	}
	startS, endS := start.String(), end.String()
	for _, res := range existing {
		// half-open overlap: existing.start < end AND existing.end > start
		if res.StartTime < endS && res.EndTime > startS {
			return false, nil
		}
	}
	return true, nil
}

// AvailableSlots lists the operating-window slots not yet taken on the
// date. The check is by slot-start coincidence, which equals interval
// overlap while every reservation spans exactly one slot; a variable
// duration extension must switch this to the overlap test above.
func (s *CourtSvc) AvailableSlots(ctx context.Context, courtID string, date time.Time) ([]schedule.TimeOfDay, error) {
	court, err := s.courts.ByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if !court.Active {
		return []schedule.TimeOfDay{}, nil
	}
	existing, err := s.reservations.ConfirmedByCourtDate(ctx, court.ID, domain.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("load confirmed reservations: %w", err)
	}
	taken := make(map[string]struct{}, len(existing))
	for _, res := range existing {
		taken[res.StartTime] = struct{}{}
	}
	free := make([]schedule.TimeOfDay, 0, schedule.CloseHour-schedule.OpenHour)
	for _, slot := range schedule.OperatingSlots() {
		if _, ok := taken[slot.String()]; !ok {
			free = append(free, slot)
		}
	}
	return free, nil
}
