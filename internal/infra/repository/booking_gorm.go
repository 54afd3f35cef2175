package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/lumiere-salon/salon-scheduler/internal/domain/booking"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// isUniqueViolation reconhece violação de constraint única nos dois
// backends (Postgres 23505, SQLite "UNIQUE constraint failed") além
// da tradução do próprio gorm.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ?", date).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Conflict (pré-checagem; a constraint idx_slot decide de verdade)
// --------------------------------------------------

func (r *BookingGormRepository) AssertSlotFree(
	ctx context.Context,
	date string,
	timeSlot string,
) error {
	return r.AssertSlotFreeExcluding(ctx, date, timeSlot, 0)
}

// AssertSlotFreeExcluding ignora o agendamento excludeID na contagem:
// reagendar para o próprio horário é um no-op, não um conflito.
func (r *BookingGormRepository) AssertSlotFreeExcluding(
	ctx context.Context,
	date string,
	timeSlot string,
	excludeID uint,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND time = ? AND id <> ?", date, timeSlot, excludeID).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("slot_taken")
	}

	return nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		// corrida entre duas primeiras reservas do mesmo telefone:
		// a unique em phone rejeita o segundo insert e reaproveitamos
		// o registro vencedor
		if isUniqueViolation(err) {
			var existing models.Client
			if err2 := r.db.WithContext(ctx).
				Where("phone = ?", phone).
				First(&existing).Error; err2 == nil {
				return &existing, nil
			}
		}
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}

	return nil
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status)

	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) UpdatePayment(
	ctx context.Context,
	id uint,
	method string,
	amount float64,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_method": method,
			"amount":         amount,
		})

	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) UpdateSlot(
	ctx context.Context,
	id uint,
	date string,
	timeSlot string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"date": date,
			"time": timeSlot,
		})

	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return 0, httperr.ErrBusiness("slot_taken")
		}
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
