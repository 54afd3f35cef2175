package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	ucBooking "github.com/lumiere-salon/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	createUC       *ucBooking.CreateBooking
	availabilityUC *ucBooking.GetAvailability
}

func NewPublicHandler(
	createUC *ucBooking.CreateBooking,
	availabilityUC *ucBooking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		createUC:       createUC,
		availabilityUC: availabilityUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:mm

	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data é obrigatória")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			Name:          req.Name,
			Phone:         req.Phone,
			Service:       req.Service,
			Date:          req.Date,
			Time:          req.Time,
			PaymentMethod: req.PaymentMethod,
			Amount:        req.Amount,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Agendamento realizado com sucesso!",
		"appointmentId": ap.ID,
	})
}

func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_fields"):
		httperr.BadRequest(c, "missing_fields", "Todos os campos são obrigatórios.")
	case httperr.IsBusiness(err, "invalid_phone"):
		httperr.BadRequest(c, "invalid_phone", "Número de telefone inválido. Use um formato brasileiro válido.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_unavailable", "Horário indisponível. Por favor, escolha outro.")
	default:
		httperr.Internal(c, "appointment_failed", "Erro ao criar agendamento.")
	}
}
