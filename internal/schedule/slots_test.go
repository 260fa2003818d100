package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots(t *testing.T) {
	w, ok := ParseWindow("6 PM - 9 PM")
	require.True(t, ok)

	slots, err := Slots(w, 15)
	require.NoError(t, err)

	assert.Len(t, slots, 13)
	assert.Equal(t, "18:00", slots[0])
	assert.Equal(t, "20:45", slots[len(slots)-1])
}

func TestSlotsDropsPartialTrailingSlot(t *testing.T) {
	// 50-minute window, 15-minute slots: the slot starting at minute 45
	// would run past the window end and must not be emitted.
	slots, err := Slots(TimeWindow{Start: 600, End: 650}, 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:15", "10:30"}, slots)
}

func TestSlotsStrictlyIncreasing(t *testing.T) {
	w, ok := ParseWindow("9 AM - 5 PM")
	require.True(t, ok)

	slots, err := Slots(w, 20)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestSlotsWindowShorterThanGranularity(t *testing.T) {
	slots, err := Slots(TimeWindow{Start: 600, End: 610}, 15)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlotsInvalidGranularity(t *testing.T) {
	_, err := Slots(TimeWindow{Start: 600, End: 720}, 0)
	assert.Error(t, err)

	_, err = Slots(TimeWindow{Start: 600, End: 720}, -15)
	assert.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:05", FormatMinutes(545))
	assert.Equal(t, "23:59", FormatMinutes(1439))
}
