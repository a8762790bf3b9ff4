package events

import (
	"encoding/json"
	"fmt"
)

// Routing keys published on the reservation exchange.
const (
	RKReservationCreated   = "reservation.created"
	RKReservationCancelled = "reservation.cancelled"
	RKReservationCompleted = "reservation.completed"
	RKReservationNoShow    = "reservation.no_show"
)

// ReservationCreated carries enough for a notification message.
type ReservationCreated struct {
	ReservationID string  `json:"reservation_id"`
	PlayerID      string  `json:"player_id"`
	CourtID       string  `json:"court_id"`
	Date          string  `json:"date"`  // YYYY-MM-DD
	Start         string  `json:"start"` // HH:MM
	End           string  `json:"end"`   // HH:MM
	Price         float64 `json:"price"`
}

type ReservationCancelled struct {
	ReservationID string `json:"reservation_id"`
	CancelledBy   string `json:"cancelled_by,omitempty"`
}

// ReservationBatch covers the admin bulk transitions.
type ReservationBatch struct {
	ReservationIDs []string `json:"reservation_ids"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
