package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type auditLogRow struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}

// List devolve a trilha de auditoria paginada, com filtros opcionais
// de ação e intervalo de datas.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 200 {
		limit = 100
	}

	q := h.db.Model(&models.AuditLog{}).
		Select(`audit_logs.id, audit_logs.user_id, COALESCE(users.username, '') AS username,
			audit_logs.action, audit_logs.details, audit_logs.ip_address, audit_logs.created_at`).
		Joins("LEFT JOIN users ON users.id = audit_logs.user_id")

	if action := c.Query("action"); action != "" {
		q = q.Where("audit_logs.action = ?", action)
	}
	if from := c.Query("from"); from != "" {
		q = q.Where("audit_logs.created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("audit_logs.created_at <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_logs", "Erro ao consultar auditoria.")
		return
	}

	var rows []auditLogRow
	if err := q.
		Order("audit_logs.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_logs", "Erro ao consultar auditoria.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":  rows,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
