package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lumiere-salon/salon-scheduler/internal/domain/booking"
)

func TestGetAvailabilityEmptyDay(t *testing.T) {
	_, repo, _ := newTestEnv(t)
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, domain.Slots, slots)
}

func TestGetAvailabilityExcludesBooked(t *testing.T) {
	_, repo, _ := newTestEnv(t)
	createUC := NewCreateBooking(repo)
	uc := NewGetAvailability(repo)
	ctx := context.Background()

	_, err := createUC.Execute(ctx, validInput())
	require.NoError(t, err)

	slots, err := uc.Execute(ctx, "2025-03-10")
	require.NoError(t, err)

	assert.Len(t, slots, 9)
	assert.NotContains(t, slots, "09:00")

	// outro dia segue intacto
	other, err := uc.Execute(ctx, "2025-03-11")
	require.NoError(t, err)
	assert.Len(t, other, 10)
}
