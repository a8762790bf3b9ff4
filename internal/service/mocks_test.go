package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/you/padel-club/internal/domain"
)

type mockCourtStore struct{ mock.Mock }

func (m *mockCourtStore) Create(ctx context.Context, c *domain.Court) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCourtStore) ByID(ctx context.Context, id string) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Court); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCourtStore) List(ctx context.Context, page, size int32, nameQuery string) ([]domain.Court, error) {
	args := m.Called(ctx, page, size, nameQuery)
	if cs, ok := args.Get(0).([]domain.Court); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCourtStore) Update(ctx context.Context, c *domain.Court) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCourtStore) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPlayerStore struct{ mock.Mock }

func (m *mockPlayerStore) Create(ctx context.Context, p *domain.Player) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPlayerStore) ByID(ctx context.Context, id string) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Player); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlayerStore) List(ctx context.Context, page, size int32, activeOnly bool) ([]domain.Player, error) {
	args := m.Called(ctx, page, size, activeOnly)
	if ps, ok := args.Get(0).([]domain.Player); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlayerStore) Update(ctx context.Context, p *domain.Player) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPlayerStore) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

type mockReservationStore struct{ mock.Mock }

func (m *mockReservationStore) CreateConfirmed(ctx context.Context, res *domain.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *mockReservationStore) ByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*domain.Reservation); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationStore) Update(ctx context.Context, res *domain.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *mockReservationStore) ConfirmedByCourtDate(ctx context.Context, courtID string, date time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, courtID, date)
	if rs, ok := args.Get(0).([]domain.Reservation); ok {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationStore) List(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, int64, error) {
	args := m.Called(ctx, f)
	var rs []domain.Reservation
	if v, ok := args.Get(0).([]domain.Reservation); ok {
		rs = v
	}
	return rs, args.Get(1).(int64), args.Error(2)
}

func (m *mockReservationStore) UpdateStatusBulk(ctx context.Context, ids []string, to domain.ReservationStatus) (int64, error) {
	args := m.Called(ctx, ids, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReservationStore) Stats(ctx context.Context, from, to time.Time) (*domain.ReservationStats, error) {
	args := m.Called(ctx, from, to)
	if s, ok := args.Get(0).(*domain.ReservationStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	return m.Called(ctx, key, v).Error(0)
}
