package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableSlotsEmptyDay(t *testing.T) {
	got := AvailableSlots(nil)

	assert.Len(t, got, 10)
	assert.Equal(t, Slots, got)
}

func TestAvailableSlotsFiltersBooked(t *testing.T) {
	got := AvailableSlots([]string{"09:00", "13:00"})

	assert.Len(t, got, 8)
	assert.NotContains(t, got, "09:00")
	assert.NotContains(t, got, "13:00")
	// ordem canônica preservada
	assert.Equal(t, "10:00", got[0])
	assert.Equal(t, "18:00", got[len(got)-1])
}

func TestAvailableSlotsIgnoresUnknownTimes(t *testing.T) {
	// horário fora do universo não deve afetar o resultado
	got := AvailableSlots([]string{"08:00", "19:30"})

	assert.Equal(t, Slots, got)
}

func TestAvailableSlotsFullDay(t *testing.T) {
	got := AvailableSlots(Slots)

	assert.Empty(t, got)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("pending"))
	assert.True(t, IsValidStatus("completed"))
	assert.True(t, IsValidStatus("cancelled"))

	assert.False(t, IsValidStatus("canceled"))
	assert.False(t, IsValidStatus("PENDING"))
	assert.False(t, IsValidStatus(""))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
