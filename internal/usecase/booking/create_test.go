package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	dbpkg "github.com/lumiere-salon/salon-scheduler/internal/db"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	infraRepo "github.com/lumiere-salon/salon-scheduler/internal/infra/repository"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

func newTestEnv(t *testing.T) (*gorm.DB, *infraRepo.BookingGormRepository, *audit.Dispatcher) {
	t.Helper()

	gdb, err := dbpkg.Open(":memory:")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	))

	repo := infraRepo.NewBookingGormRepository(gdb)
	dispatcher := audit.NewDispatcher(audit.New(gdb))

	return gdb, repo, dispatcher
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Name:    "Ana Silva",
		Phone:   "(11) 98888-7777",
		Service: "Corte & Estilo",
		Date:    "2025-03-10",
		Time:    "09:00",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	gdb, repo, _ := newTestEnv(t)
	uc := NewCreateBooking(repo)

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "2025-03-10", ap.Date)
	assert.Equal(t, "09:00", ap.Time)

	// telefone guardado só com dígitos
	var client models.Client
	require.NoError(t, gdb.First(&client, ap.ClientID).Error)
	assert.Equal(t, "11988887777", client.Phone)
	assert.Equal(t, "Ana Silva", client.Name)
}

func TestCreateBookingMissingFields(t *testing.T) {
	_, repo, _ := newTestEnv(t)
	uc := NewCreateBooking(repo)

	in := validInput()
	in.Service = ""

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))
}

func TestCreateBookingInvalidPhone(t *testing.T) {
	_, repo, _ := newTestEnv(t)
	uc := NewCreateBooking(repo)

	in := validInput()
	in.Phone = "119999999" // nove dígitos

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))
}

func TestCreateBookingSlotTaken(t *testing.T) {
	_, repo, _ := newTestEnv(t)
	uc := NewCreateBooking(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Beatriz Costa"
	in.Phone = "21977776666"

	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestCreateBookingReusesClientByPhone(t *testing.T) {
	gdb, repo, _ := newTestEnv(t)
	uc := NewCreateBooking(repo)
	ctx := context.Background()

	first, err := uc.Execute(ctx, validInput())
	require.NoError(t, err)

	// mesma pessoa volta com o nome grafado diferente
	in := validInput()
	in.Name = "Ana S."
	in.Time = "11:00"

	second, err := uc.Execute(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, first.ClientID, second.ClientID)

	var count int64
	gdb.Model(&models.Client{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
