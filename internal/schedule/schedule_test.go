package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatingSlots(t *testing.T) {
	slots := OperatingSlots()

	require.Len(t, slots, 14)
	assert.Equal(t, "08:00", slots[0].String())
	assert.Equal(t, "21:00", slots[len(slots)-1].String())

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]), "slots must ascend")
	}
}

func TestComputeEnd(t *testing.T) {
	end := ComputeEnd(TimeOfDay{Hour: 10})
	assert.Equal(t, "11:00", end.String())

	// minutes carry over
	end = ComputeEnd(TimeOfDay{Hour: 9, Minute: 30})
	assert.Equal(t, "10:30", end.String())

	// midnight wrap is accepted here; upstream validation excludes it
	end = ComputeEnd(TimeOfDay{Hour: 23})
	assert.Equal(t, "00:00", end.String())
}

func TestComputeEnd_RoundTripOneHour(t *testing.T) {
	for _, start := range OperatingSlots() {
		end := ComputeEnd(start)
		hours := float64(end.Minutes()-start.Minutes()) / 60.0
		assert.Equal(t, 1.0, hours, "slot %s", start)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("08:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 8}, got)

	got, err = Parse("21:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 21, Minute: 30}, got)

	_, err = Parse("25:00")
	assert.Error(t, err)
	_, err = Parse("8am")
	assert.Error(t, err)
}

func TestWithinOperatingWindow(t *testing.T) {
	assert.False(t, WithinOperatingWindow(TimeOfDay{Hour: 7, Minute: 59}))
	assert.True(t, WithinOperatingWindow(TimeOfDay{Hour: 8}))
	assert.True(t, WithinOperatingWindow(TimeOfDay{Hour: 21, Minute: 30}))
	assert.False(t, WithinOperatingWindow(TimeOfDay{Hour: 22}))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "08:00 AM", TimeOfDay{Hour: 8}.Display())
	assert.Equal(t, "09:00 PM", TimeOfDay{Hour: 21}.Display())
}
