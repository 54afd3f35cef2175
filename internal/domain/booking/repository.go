package booking

import (
	"context"

	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	// -------- Conflict (fast path; a constraint única em (date,time)
	// é a garantia real) --------
	AssertSlotFree(
		ctx context.Context,
		date string,
		timeSlot string,
	) error

	// Variante para reagendamento: o próprio agendamento não conta
	// como ocupante do slot de destino.
	AssertSlotFreeExcluding(
		ctx context.Context,
		date string,
		timeSlot string,
		excludeID uint,
	) error

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
	) (*models.Client, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateStatus(
		ctx context.Context,
		id uint,
		status string,
	) (int64, error)

	UpdatePayment(
		ctx context.Context,
		id uint,
		method string,
		amount float64,
	) (int64, error)

	UpdateSlot(
		ctx context.Context,
		id uint,
		date string,
		timeSlot string,
	) (int64, error)
}
