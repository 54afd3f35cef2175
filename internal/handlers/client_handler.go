package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/httpresp"
	"github.com/lumiere-salon/salon-scheduler/internal/middleware"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
	"github.com/lumiere-salon/salon-scheduler/internal/validators"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: dispatcher}
}

type clientRow struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	CreatedAt        time.Time `json:"created_at"`
	AppointmentCount int       `json:"appointment_count"`
	TotalSpent       float64   `json:"total_spent"`
}

// ======================================================
// LIST (com agregados de atendimento/faturamento)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var rows []clientRow

	err := h.db.
		Model(&models.Client{}).
		Select(`clients.id, clients.name, clients.phone, clients.created_at,
			COUNT(appointments.id) AS appointment_count,
			COALESCE(SUM(CASE WHEN appointments.status = 'completed' THEN appointments.amount ELSE 0 END), 0) AS total_spent`).
		Joins("LEFT JOIN appointments ON appointments.client_id = clients.id").
		Group("clients.id").
		Order("clients.name ASC").
		Scan(&rows).Error

	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.OK(c, rows)
}

// ======================================================
// HISTORY
// ======================================================

func (h *ClientHandler) History(c *gin.Context) {
	id := c.Param("id")

	var history []models.Appointment
	if err := h.db.
		Where("client_id = ?", id).
		Order("date DESC, time DESC").
		Find(&history).Error; err != nil {

		httperr.Internal(c, "failed_to_load_history", "Erro ao carregar histórico.")
		return
	}

	httpresp.OK(c, history)
}

// ======================================================
// UPDATE
// ======================================================

type UpdateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *ClientHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Phone != "" {
		if !validators.IsValidPhone(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Número de telefone inválido. Use um formato brasileiro válido."})
			return
		}
		req.Phone = validators.NormalizePhone(req.Phone)
	}

	res := h.db.Model(&models.Client{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":  req.Name,
			"phone": req.Phone,
		})

	if res.Error != nil {
		if isUniqueErr(res.Error) {
			httperr.Conflict(c, "phone_taken", "Telefone já cadastrado para outro cliente.")
			return
		}
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "CLIENT_UPDATE",
		Details: fmt.Sprintf("Atualizou cliente ID: %d", id),
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"changes": res.RowsAffected})
}

// ======================================================
// DELETE (agendamentos primeiro, depois o cliente)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.db.Where("client_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointments", "Erro ao excluir cliente.")
		return
	}

	res := h.db.Delete(&models.Client{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "CLIENT_DELETE",
		Details: fmt.Sprintf("Excluiu cliente ID: %d", id),
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"changes": res.RowsAffected})
}
