package handlers

import (
	"errors"
	"net/http"

	"github.com/you/padel-club/internal/domain"
)

// Slot conflicts get a user-facing message: pick another slot.
const slotTakenMessage = "The selected slot is no longer available. Please choose another time."

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrOutOfHours),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	if errors.Is(err, domain.ErrSlotTaken) {
		return slotTakenMessage
	}
	return err.Error()
}
