package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/httpresp"
	"github.com/lumiere-salon/salon-scheduler/internal/middleware"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
	ucBooking "github.com/lumiere-salon/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER — agenda administrativa
// ======================================================

type AppointmentHandler struct {
	db             *gorm.DB
	updateStatusUC *ucBooking.UpdateStatus
	rescheduleUC   *ucBooking.Reschedule
	registerPayUC  *ucBooking.RegisterPayment
}

func NewAppointmentHandler(
	db *gorm.DB,
	updateStatusUC *ucBooking.UpdateStatus,
	rescheduleUC *ucBooking.Reschedule,
	registerPayUC *ucBooking.RegisterPayment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:             db,
		updateStatusUC: updateStatusUC,
		rescheduleUC:   rescheduleUC,
		registerPayUC:  registerPayUC,
	}
}

type appointmentRow struct {
	ID            uint      `json:"id"`
	ClientName    string    `json:"client_name"`
	ClientPhone   string    `json:"client_phone"`
	Service       string    `json:"service"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// ======================================================
// LIST (join com cliente, agenda mais recente primeiro)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var rows []appointmentRow

	err := h.db.
		Model(&models.Appointment{}).
		Select(`appointments.id, clients.name AS client_name, clients.phone AS client_phone,
			appointments.service, appointments.date, appointments.time, appointments.status,
			appointments.payment_method, appointments.amount, appointments.created_at`).
		Joins("LEFT JOIN clients ON clients.id = appointments.client_id").
		Order("appointments.date DESC, appointments.time ASC").
		Scan(&rows).Error

	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, rows)
}

// ======================================================
// UPDATE STATUS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	changes, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		actorID,
		c.ClientIP(),
		uint(id),
		req.Status,
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Status inválido")
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"changes": changes})
}

// ======================================================
// REGISTER PAYMENT
// ======================================================

type RegisterPaymentRequest struct {
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
}

func (h *AppointmentHandler) RegisterPayment(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	changes, err := h.registerPayUC.Execute(
		c.Request.Context(),
		actorID,
		c.ClientIP(),
		uint(id),
		req.PaymentMethod,
		req.Amount,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_register_payment", "Erro ao registrar pagamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"changes": changes})
}

// ======================================================
// RESCHEDULE
// ======================================================

type RescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	changes, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		actorID,
		c.ClientIP(),
		uint(id),
		req.Date,
		req.Time,
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_fields"):
			httperr.BadRequest(c, "missing_fields", "Data e hora são obrigatórios.")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_unavailable", "Horário indisponível. Por favor, escolha outro.")
		default:
			httperr.Internal(c, "failed_to_reschedule", "Erro ao reagendar.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"changes": changes})
}
