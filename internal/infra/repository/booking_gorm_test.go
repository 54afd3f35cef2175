package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/lumiere-salon/salon-scheduler/internal/db"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := dbpkg.Open(":memory:")
	require.NoError(t, err)

	// banco em memória vive na conexão; uma só para todo o teste
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.Client{},
		&models.Appointment{},
	))

	return gdb
}

func seedClient(t *testing.T, repo *BookingGormRepository, phone string) *models.Client {
	t.Helper()

	client, err := repo.GetOrCreateClient(context.Background(), "Ana Silva", phone)
	require.NoError(t, err)
	return client
}

func TestGetOrCreateClient(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.GetOrCreateClient(ctx, "Ana Silva", "11988887777")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ana Silva", created.Name)

	// mesmo telefone, outro nome: reaproveita o registro existente
	again, err := repo.GetOrCreateClient(ctx, "Ana S.", "11988887777")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Ana Silva", again.Name)

	var count int64
	repo.db.Model(&models.Client{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateClientPhoneRace(t *testing.T) {
	gdb := newTestDB(t)

	// sem transação implícita no Create: o insert rival precisa
	// continuar visível depois que o nosso perde a corrida
	repo := NewBookingGormRepository(gdb.Session(&gorm.Session{SkipDefaultTransaction: true}))

	// o rival grava o mesmo telefone entre o lookup e o insert
	raced := false
	err := gdb.Callback().Create().Before("gorm:create").Register("phone_race", func(tx *gorm.DB) {
		if raced {
			return
		}
		if _, ok := tx.Statement.Dest.(*models.Client); !ok {
			return
		}
		raced = true

		now := time.Now()
		gdb.Exec(
			"INSERT INTO clients (name, phone, created_at, updated_at) VALUES (?, ?, ?, ?)",
			"Ana Silva", "11988887777", now, now,
		)
	})
	require.NoError(t, err)

	client, err := repo.GetOrCreateClient(context.Background(), "Ana S.", "11988887777")
	require.NoError(t, err)
	require.True(t, raced)

	// perdeu a corrida, reaproveita o registro vencedor
	assert.Equal(t, "Ana Silva", client.Name)
	assert.NotZero(t, client.ID)

	var count int64
	gdb.Model(&models.Client{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAssertSlotFree(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t))
	ctx := context.Background()
	client := seedClient(t, repo, "11988887777")

	require.NoError(t, repo.AssertSlotFree(ctx, "2025-03-10", "09:00"))

	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		ClientID: client.ID,
		Service:  "Corte & Estilo",
		Date:     "2025-03-10",
		Time:     "09:00",
		Status:   "pending",
	}))

	err := repo.AssertSlotFree(ctx, "2025-03-10", "09:00")
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// outro horário do mesmo dia continua livre
	assert.NoError(t, repo.AssertSlotFree(ctx, "2025-03-10", "10:00"))
}

func TestAssertSlotFreeExcluding(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t))
	ctx := context.Background()
	client := seedClient(t, repo, "11988887777")

	ap := &models.Appointment{ClientID: client.ID, Service: "Corte & Estilo", Date: "2025-03-10", Time: "09:00", Status: "pending"}
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	// o próprio agendamento não ocupa o slot de destino
	assert.NoError(t, repo.AssertSlotFreeExcluding(ctx, "2025-03-10", "09:00", ap.ID))

	// para qualquer outro agendamento o slot segue ocupado
	err := repo.AssertSlotFreeExcluding(ctx, "2025-03-10", "09:00", ap.ID+1)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestCreateAppointmentSlotConstraint(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t))
	ctx := context.Background()
	client := seedClient(t, repo, "11988887777")

	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		ClientID: client.ID,
		Service:  "Corte & Estilo",
		Date:     "2025-03-10",
		Time:     "14:00",
		Status:   "pending",
	}))

	// segundo insert no mesmo slot bate na constraint única,
	// independente de qualquer pré-checagem
	err := repo.CreateAppointment(ctx, &models.Appointment{
		ClientID: client.ID,
		Service:  "Manicure & Pedicure",
		Date:     "2025-03-10",
		Time:     "14:00",
		Status:   "pending",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// mesmo horário em outro dia passa
	assert.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		ClientID: client.ID,
		Service:  "Manicure & Pedicure",
		Date:     "2025-03-11",
		Time:     "14:00",
		Status:   "pending",
	}))
}

func TestListBookedTimes(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t))
	ctx := context.Background()
	client := seedClient(t, repo, "11988887777")

	for _, slot := range []string{"15:00", "09:00", "11:00"} {
		require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
			ClientID: client.ID,
			Service:  "Coloração Premium",
			Date:     "2025-03-10",
			Time:     slot,
			Status:   "pending",
		}))
	}

	times, err := repo.ListBookedTimes(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00", "15:00"}, times)

	empty, err := repo.ListBookedTimes(ctx, "2025-03-12")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateStatus(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t))
	ctx := context.Background()
	client := seedClient(t, repo, "11988887777")

	ap := &models.Appointment{ClientID: client.ID, Service: "Corte & Estilo", Date: "2025-03-10", Time: "09:00", Status: "pending"}
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	changes, err := repo.UpdateStatus(ctx, ap.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	got, err := repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)

	// id inexistente não é erro, só zero linhas
	changes, err = repo.UpdateStatus(ctx, 9999, "cancelled")
	require.NoError(t, err)
	assert.Zero(t, changes)
}

func TestUpdateSlotConflict(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t))
	ctx := context.Background()
	client := seedClient(t, repo, "11988887777")

	first := &models.Appointment{ClientID: client.ID, Service: "Corte & Estilo", Date: "2025-03-10", Time: "09:00", Status: "pending"}
	second := &models.Appointment{ClientID: client.ID, Service: "Manicure & Pedicure", Date: "2025-03-10", Time: "10:00", Status: "pending"}
	require.NoError(t, repo.CreateAppointment(ctx, first))
	require.NoError(t, repo.CreateAppointment(ctx, second))

	// mover o segundo para cima do primeiro viola idx_slot
	_, err := repo.UpdateSlot(ctx, second.ID, "2025-03-10", "09:00")
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// mover para um slot livre funciona
	changes, err := repo.UpdateSlot(ctx, second.ID, "2025-03-10", "16:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)
}

func TestUpdatePayment(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t))
	ctx := context.Background()
	client := seedClient(t, repo, "11988887777")

	ap := &models.Appointment{ClientID: client.ID, Service: "Corte & Estilo", Date: "2025-03-10", Time: "09:00", Status: "pending"}
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	changes, err := repo.UpdatePayment(ctx, ap.ID, "pix", 120)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	got, err := repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pix", got.PaymentMethod)
	assert.Equal(t, 120.0, got.Amount)
}
