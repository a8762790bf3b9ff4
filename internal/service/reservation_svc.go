package service

import (
	"context"
	"fmt"
	"time"

	"github.com/you/padel-club/internal/domain"
	"github.com/you/padel-club/internal/events"
	"github.com/you/padel-club/internal/schedule"
)

// ReservationSvc is the booking write path and lifecycle owner.
type ReservationSvc struct {
	reservations ReservationStore
	players      PlayerStore
	courts       *CourtSvc
	pub          EventPublisher
}

func NewReservationSvc(reservations ReservationStore, players PlayerStore, courts *CourtSvc, pub EventPublisher) *ReservationSvc {
	return &ReservationSvc{reservations: reservations, players: players, courts: courts, pub: pub}
}

// CreateReservationInput is the booking request. End and Price are
// optional overrides; left zero they default to start+1h and the
// court's tariff.
type CreateReservationInput struct {
	CourtID  string
	PlayerID string
	Date     time.Time
	Start    schedule.TimeOfDay
	End      *schedule.TimeOfDay
	Notes    string
	Price    *float64
}

// Create validates and persists a new confirmed reservation. Validation
// short-circuits in order: past date, operating window, end after
// start, slot availability. The store re-checks the conflict at commit
// time, so a concurrent winner turns the losing insert into
// domain.ErrSlotTaken rather than a double booking.
func (s *ReservationSvc) Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	court, err := s.courts.Get(ctx, in.CourtID)
	if err != nil {
		return nil, err
	}
	player, err := s.players.ByID(ctx, in.PlayerID)
	if err != nil {
		return nil, err
	}

	date := domain.DateOnly(in.Date)
	if date.Before(domain.DateOnly(time.Now())) {
		return nil, domain.ErrPastDate
	}
	if !schedule.WithinOperatingWindow(in.Start) {
		return nil, domain.ErrOutOfHours
	}
	end := schedule.ComputeEnd(in.Start)
	if in.End != nil {
		end = *in.End
	}
	if !end.After(in.Start) {
		return nil, domain.ErrInvalidRange
	}

	free, err := s.courts.courtAvailable(ctx, court, date, in.Start, end)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, domain.ErrSlotTaken
	}

	// flat tariff per reservation; a longer explicit end does not scale it
	price := court.TariffPerHour
	if in.Price != nil {
		price = *in.Price
	}
	res := &domain.Reservation{
		CourtID:    court.ID,
		PlayerID:   player.ID,
		Date:       date,
		StartTime:  in.Start.String(),
		EndTime:    end.String(),
		Status:     domain.StatusConfirmed,
		TotalPrice: price,
		Notes:      in.Notes,
	}
	if err := s.reservations.CreateConfirmed(ctx, res); err != nil {
		return nil, err
	}

	_ = s.pub.PublishJSON(ctx, events.RKReservationCreated, events.ReservationCreated{
		ReservationID: res.ID,
		PlayerID:      res.PlayerID,
		CourtID:       res.CourtID,
		Date:          res.Date.Format(time.DateOnly),
		Start:         res.StartTime,
		End:           res.EndTime,
		Price:         res.TotalPrice,
	})
	return res, nil
}

// Cancel moves a confirmed, not-yet-past reservation to cancelled.
// An ineligible reservation is a no-op reported as false, not an error;
// the caller decides the messaging.
func (s *ReservationSvc) Cancel(ctx context.Context, id, actor string) (bool, error) {
	res, err := s.reservations.ByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !res.CanCancel(time.Now()) {
		return false, nil
	}
	res.Status = domain.StatusCancelled
	if actor != "" {
		res.Notes = appendNote(res.Notes, "Cancelled by: "+actor)
	}
	if err := s.reservations.Update(ctx, res); err != nil {
		return false, fmt.Errorf("cancel reservation: %w", err)
	}
	_ = s.pub.PublishJSON(ctx, events.RKReservationCancelled, events.ReservationCancelled{
		ReservationID: res.ID,
		CancelledBy:   actor,
	})
	return true, nil
}

func appendNote(notes, extra string) string {
	if notes == "" {
		return extra
	}
	return notes + "\n" + extra
}

// Complete marks still-confirmed reservations completed; rows in any
// other status are skipped. Returns the number actually transitioned.
func (s *ReservationSvc) Complete(ctx context.Context, ids []string) (int64, error) {
	n, err := s.reservations.UpdateStatusBulk(ctx, ids, domain.StatusCompleted)
	if err != nil {
		return 0, fmt.Errorf("mark completed: %w", err)
	}
	if n > 0 {
		_ = s.pub.PublishJSON(ctx, events.RKReservationCompleted, events.ReservationBatch{ReservationIDs: ids})
	}
	return n, nil
}

// MarkNoShow is the no-show counterpart of Complete.
func (s *ReservationSvc) MarkNoShow(ctx context.Context, ids []string) (int64, error) {
	n, err := s.reservations.UpdateStatusBulk(ctx, ids, domain.StatusNoShow)
	if err != nil {
		return 0, fmt.Errorf("mark no-show: %w", err)
	}
	if n > 0 {
		_ = s.pub.PublishJSON(ctx, events.RKReservationNoShow, events.ReservationBatch{ReservationIDs: ids})
	}
	return n, nil
}

func (s *ReservationSvc) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservations.ByID(ctx, id)
}

func (s *ReservationSvc) List(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, int64, error) {
	return s.reservations.List(ctx, f)
}

// Stats aggregates the reporting window, defaulting to the last 30 days.
func (s *ReservationSvc) Stats(ctx context.Context, from, to time.Time) (*domain.ReservationStats, error) {
	if to.IsZero() {
		to = domain.DateOnly(time.Now())
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	return s.reservations.Stats(ctx, domain.DateOnly(from), domain.DateOnly(to))
}
