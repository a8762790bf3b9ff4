package domain

import (
	"time"

	"github.com/you/padel-club/internal/schedule"
)

type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation holds one court for one slot on one date. Only confirmed
// rows occupy a slot; cancelled, completed and no_show rows stay around
// for history and free the slot for rebooking.
type Reservation struct {
	ID         string            `gorm:"primaryKey" json:"id"`
	CourtID    string            `gorm:"index" json:"court_id"`
	PlayerID   string            `gorm:"index" json:"player_id"`
	Date       time.Time         `gorm:"type:date;index" json:"date"`
	StartTime  string            `gorm:"type:varchar(5);index" json:"start_time"` // HH:MM
	EndTime    string            `gorm:"type:varchar(5)" json:"end_time"`         // HH:MM
	Status     ReservationStatus `gorm:"index" json:"status"`
	TotalPrice float64           `gorm:"type:numeric(8,2)" json:"total_price"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// CanCancel reports whether the reservation may still be cancelled:
// only confirmed reservations on or after the given day.
func (r *Reservation) CanCancel(today time.Time) bool {
	return r.Status == StatusConfirmed && !r.Date.Before(DateOnly(today))
}

// DurationHours computes the booked span in hours from the HH:MM pair,
// falling back to the 1-hour unit when either side is missing.
func (r *Reservation) DurationHours() float64 {
	if r.StartTime == "" || r.EndTime == "" {
		return 1.0
	}
	start, err := schedule.Parse(r.StartTime)
	if err != nil {
		return 1.0
	}
	end, err := schedule.Parse(r.EndTime)
	if err != nil {
		return 1.0
	}
	return float64(end.Minutes()-start.Minutes()) / 60.0
}

// DateOnly truncates a timestamp to its calendar date in UTC, the form
// reservation dates are stored and compared in.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ReservationFilter narrows listing queries; zero values mean "any".
type ReservationFilter struct {
	PlayerID string
	CourtID  string
	Status   ReservationStatus
	DateFrom time.Time
	DateTo   time.Time
	Page     int32
	PageSize int32
}

// ReservationStats aggregates a reporting period.
type ReservationStats struct {
	Total     int64        `json:"total"`
	Confirmed int64        `json:"confirmed"`
	Cancelled int64        `json:"cancelled"`
	Completed int64        `json:"completed"`
	NoShow    int64        `json:"no_show"`
	Revenue   float64      `json:"revenue"`
	ByCourt   []CourtUsage `json:"by_court"`
}

type CourtUsage struct {
	CourtID      string  `json:"court_id"`
	Reservations int64   `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}
