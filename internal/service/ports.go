package service

import (
	"context"
	"time"

	"github.com/you/padel-club/internal/domain"
)

// Store interfaces the services run against; implemented by
// internal/repository and by test doubles.

type CourtStore interface {
	Create(ctx context.Context, c *domain.Court) error
	ByID(ctx context.Context, id string) (*domain.Court, error)
	List(ctx context.Context, page, size int32, nameQuery string) ([]domain.Court, error)
	Update(ctx context.Context, c *domain.Court) error
	Deactivate(ctx context.Context, id string) error
}

type PlayerStore interface {
	Create(ctx context.Context, p *domain.Player) error
	ByID(ctx context.Context, id string) (*domain.Player, error)
	List(ctx context.Context, page, size int32, activeOnly bool) ([]domain.Player, error)
	Update(ctx context.Context, p *domain.Player) error
	SetActive(ctx context.Context, id string, active bool) error
}

type ReservationStore interface {
	CreateConfirmed(ctx context.Context, res *domain.Reservation) error
	ByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	ConfirmedByCourtDate(ctx context.Context, courtID string, date time.Time) ([]domain.Reservation, error)
	List(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, int64, error)
	UpdateStatusBulk(ctx context.Context, ids []string, to domain.ReservationStatus) (int64, error)
	Stats(ctx context.Context, from, to time.Time) (*domain.ReservationStats, error)
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
