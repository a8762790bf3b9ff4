// Package schedule knows the club's operating window and the fixed
// 1-hour slot grid every reservation snaps to.
package schedule

import (
	"fmt"
	"time"
)

// Operating window: first bookable hour and the closing hour.
// The last slot starts one hour before close.
const (
	OpenHour  = 8
	CloseHour = 22
)

// TimeOfDay is a wall-clock time within a single day, carried around as
// "HH:MM" on the wire and in the database.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String renders the zero-padded "HH:MM" form, which also sorts
// lexicographically in time order.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Display renders the 12-hour form shown to players, e.g. "08:00 AM".
func (t TimeOfDay) Display() string {
	return time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format("03:04 PM")
}

func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.Minutes() < o.Minutes() }

func (t TimeOfDay) After(o TimeOfDay) bool { return t.Minutes() > o.Minutes() }

// OperatingSlots returns every slot start in the operating window,
// ascending: 08:00 through 21:00, fourteen in total.
func OperatingSlots() []TimeOfDay {
	slots := make([]TimeOfDay, 0, CloseHour-OpenHour)
	for h := OpenHour; h < CloseHour; h++ {
		slots = append(slots, TimeOfDay{Hour: h})
	}
	return slots
}

// ComputeEnd returns start plus one hour, minutes preserved. The hour
// wraps modulo 24; starts inside the operating window never reach the
// wrap, and upstream validation keeps them there.
func ComputeEnd(start TimeOfDay) TimeOfDay {
	return TimeOfDay{Hour: (start.Hour + 1) % 24, Minute: start.Minute}
}

// WithinOperatingWindow reports whether a start time falls inside the
// bookable window, 08:00 inclusive to 22:00 exclusive.
func WithinOperatingWindow(t TimeOfDay) bool {
	return t.Hour >= OpenHour && t.Hour < CloseHour
}
