package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you/padel-club/internal/domain"
	"github.com/you/padel-club/internal/schedule"
)

// memReservationStore enforces the same guarantee as the partial unique
// index: at most one confirmed row per (court, date, start), serialized
// under a single lock so concurrent creates race for real.
type memReservationStore struct {
	mu   sync.Mutex
	rows map[string]*domain.Reservation
}

func newMemReservationStore() *memReservationStore {
	return &memReservationStore{rows: map[string]*domain.Reservation{}}
}

func slotKey(res *domain.Reservation) string {
	return res.CourtID + "|" + res.Date.Format(time.DateOnly) + "|" + res.StartTime
}

func (m *memReservationStore) CreateConfirmed(_ context.Context, res *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Status == domain.StatusConfirmed && slotKey(r) == slotKey(res) {
			return domain.ErrSlotTaken
		}
	}
	res.ID = uuid.NewString()
	cp := *res
	m.rows[res.ID] = &cp
	return nil
}

func (m *memReservationStore) ByID(context.Context, string) (*domain.Reservation, error) {
	return nil, domain.ErrReservationNotFound
}

func (m *memReservationStore) Update(context.Context, *domain.Reservation) error { return nil }

func (m *memReservationStore) ConfirmedByCourtDate(_ context.Context, courtID string, date time.Time) ([]domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Reservation
	for _, r := range m.rows {
		if r.CourtID == courtID && r.Date.Equal(date) && r.Status == domain.StatusConfirmed {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReservationStore) List(context.Context, domain.ReservationFilter) ([]domain.Reservation, int64, error) {
	return nil, 0, nil
}

func (m *memReservationStore) UpdateStatusBulk(context.Context, []string, domain.ReservationStatus) (int64, error) {
	return 0, nil
}

func (m *memReservationStore) Stats(context.Context, time.Time, time.Time) (*domain.ReservationStats, error) {
	return &domain.ReservationStats{}, nil
}

func (m *memReservationStore) confirmedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.rows {
		if r.Status == domain.StatusConfirmed {
			n++
		}
	}
	return n
}

// N concurrent bookings of the identical slot: exactly one wins, the
// rest get the typed conflict, regardless of interleaving.
func TestReservationSvc_Create_ConcurrentSameSlot(t *testing.T) {
	store := newMemReservationStore()
	courts := &mockCourtStore{}
	players := &mockPlayerStore{}
	pub := &mockPublisher{}

	courts.On("ByID", mock.Anything, "c1").Return(central(), nil)
	players.On("ByID", mock.Anything, "p1").Return(alice(), nil)
	pub.On("PublishJSON", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewReservationSvc(store, players, NewCourtSvc(courts, store), pub)

	const n = 32
	var wg sync.WaitGroup
	results := make(chan error, n)
	start := make(chan struct{})

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Create(context.Background(), CreateReservationInput{
				CourtID:  "c1",
				PlayerID: "p1",
				Date:     tomorrow(),
				Start:    schedule.TimeOfDay{Hour: 10},
			})
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	var won, conflicted int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrSlotTaken):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	require.Equal(t, 1, won, "exactly one booking must win")
	assert.Equal(t, n-1, conflicted)
	assert.Equal(t, 1, store.confirmedCount())
}
