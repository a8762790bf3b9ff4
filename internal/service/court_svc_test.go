package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you/padel-club/internal/domain"
	"github.com/you/padel-club/internal/schedule"
)

type courtFixture struct {
	courts       *mockCourtStore
	reservations *mockReservationStore
	svc          *CourtSvc
}

func newCourtFixture() *courtFixture {
	f := &courtFixture{
		courts:       &mockCourtStore{},
		reservations: &mockReservationStore{},
	}
	f.svc = NewCourtSvc(f.courts, f.reservations)
	return f
}

func TestCourtSvc_Create_Defaults(t *testing.T) {
	f := newCourtFixture()
	f.courts.On("Create", mock.Anything, mock.Anything).Return(nil)

	court, err := f.svc.Create(context.Background(), domain.Court{Name: "Central", TariffPerHour: 80})

	require.NoError(t, err)
	assert.Equal(t, domain.SurfaceGlass, court.Surface)
	assert.Equal(t, 4, court.PlayerCapacity)
	assert.True(t, court.Active)
}

func TestCourtSvc_Create_Invalid(t *testing.T) {
	f := newCourtFixture()

	cases := []domain.Court{
		{Surface: domain.SurfaceGlass, TariffPerHour: 80, PlayerCapacity: 4},           // no name
		{Name: "A", Surface: "clay", TariffPerHour: 80, PlayerCapacity: 4},             // bad surface
		{Name: "A", Surface: domain.SurfaceWall, TariffPerHour: -1, PlayerCapacity: 4}, // negative tariff
		{Name: "A", Surface: domain.SurfaceWall, TariffPerHour: 10, PlayerCapacity: 8}, // capacity out of range
		{Name: "A", Surface: domain.SurfaceWall, TariffPerHour: 10, PlayerCapacity: 1},
	}
	for _, in := range cases {
		_, err := f.svc.Create(context.Background(), in)
		require.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
	f.courts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCourtSvc_AvailableSlots_EmptyDay(t *testing.T) {
	f := newCourtFixture()
	date := domain.DateOnly(time.Now().AddDate(0, 0, 1))

	f.courts.On("ByID", mock.Anything, "c1").Return(central(), nil)
	f.reservations.On("ConfirmedByCourtDate", mock.Anything, "c1", date).
		Return([]domain.Reservation{}, nil)

	slots, err := f.svc.AvailableSlots(context.Background(), "c1", date)

	require.NoError(t, err)
	require.Len(t, slots, 14)
	assert.Equal(t, "08:00", slots[0].String())
	assert.Equal(t, "21:00", slots[13].String())
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]))
	}
}

func TestCourtSvc_AvailableSlots_ExcludesBooked(t *testing.T) {
	f := newCourtFixture()
	date := domain.DateOnly(time.Now().AddDate(0, 0, 1))

	f.courts.On("ByID", mock.Anything, "c1").Return(central(), nil)
	f.reservations.On("ConfirmedByCourtDate", mock.Anything, "c1", date).
		Return([]domain.Reservation{
			{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
			{StartTime: "15:00", EndTime: "16:00", Status: domain.StatusConfirmed},
		}, nil)

	slots, err := f.svc.AvailableSlots(context.Background(), "c1", date)

	require.NoError(t, err)
	require.Len(t, slots, 12)
	for _, s := range slots {
		assert.NotEqual(t, "10:00", s.String())
		assert.NotEqual(t, "15:00", s.String())
	}
}

func TestCourtSvc_AvailableSlots_InactiveCourt(t *testing.T) {
	f := newCourtFixture()
	date := domain.DateOnly(time.Now().AddDate(0, 0, 1))

	court := central()
	court.Active = false
	f.courts.On("ByID", mock.Anything, "c1").Return(court, nil)

	slots, err := f.svc.AvailableSlots(context.Background(), "c1", date)

	require.NoError(t, err)
	assert.Empty(t, slots)
	f.reservations.AssertNotCalled(t, "ConfirmedByCourtDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestCourtSvc_IsAvailable_Overlap(t *testing.T) {
	f := newCourtFixture()
	date := domain.DateOnly(time.Now().AddDate(0, 0, 1))

	f.courts.On("ByID", mock.Anything, "c1").Return(central(), nil)
	f.reservations.On("ConfirmedByCourtDate", mock.Anything, "c1", date).
		Return([]domain.Reservation{
			{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
		}, nil)

	at := func(h int) (bool, error) {
		start := schedule.TimeOfDay{Hour: h}
		return f.svc.IsAvailable(context.Background(), "c1", date, start, schedule.ComputeEnd(start))
	}

	// exact slot is taken
	free, err := at(10)
	require.NoError(t, err)
	assert.False(t, free)

	// one hour earlier or later: [start, end) does not overlap
	free, err = at(9)
	require.NoError(t, err)
	assert.True(t, free)
	free, err = at(11)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestCourtSvc_IsAvailable_AfterCancellation(t *testing.T) {
	f := newCourtFixture()
	date := domain.DateOnly(time.Now().AddDate(0, 0, 1))

	// the cancelled row no longer shows up in the confirmed set
	f.courts.On("ByID", mock.Anything, "c1").Return(central(), nil)
	f.reservations.On("ConfirmedByCourtDate", mock.Anything, "c1", date).
		Return([]domain.Reservation{}, nil)

	start := schedule.TimeOfDay{Hour: 10}
	free, err := f.svc.IsAvailable(context.Background(), "c1", date, start, schedule.ComputeEnd(start))

	require.NoError(t, err)
	assert.True(t, free)
}

func TestCourtSvc_IsAvailable_InactiveCourt(t *testing.T) {
	f := newCourtFixture()
	date := domain.DateOnly(time.Now().AddDate(0, 0, 1))

	court := central()
	court.Active = false
	f.courts.On("ByID", mock.Anything, "c1").Return(court, nil)

	start := schedule.TimeOfDay{Hour: 10}
	free, err := f.svc.IsAvailable(context.Background(), "c1", date, start, schedule.ComputeEnd(start))

	require.NoError(t, err)
	assert.False(t, free)
}
