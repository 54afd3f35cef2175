package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type topServiceRow struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

// ======================================================
// STATS (dashboard)
// ======================================================

func (h *StatsHandler) Stats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	weekAgo := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	monthAgo := time.Now().AddDate(0, 0, -30).Format("2006-01-02")

	var todayCount, weekCount, monthCount int64

	if err := h.db.Model(&models.Appointment{}).
		Where("date = ?", today).
		Count(&todayCount).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}

	if err := h.db.Model(&models.Appointment{}).
		Where("date >= ?", weekAgo).
		Count(&weekCount).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}

	if err := h.db.Model(&models.Appointment{}).
		Where("date >= ?", monthAgo).
		Count(&monthCount).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}

	var totalRevenue float64
	if err := h.db.Model(&models.Appointment{}).
		Where("status = ?", "completed").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}

	var topServices []topServiceRow
	if err := h.db.Model(&models.Appointment{}).
		Select("service, COUNT(*) AS count").
		Group("service").
		Order("count DESC").
		Limit(5).
		Scan(&topServices).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todayCount":   todayCount,
		"weekCount":    weekCount,
		"monthCount":   monthCount,
		"totalRevenue": totalRevenue,
		"topServices":  topServices,
	})
}

// ======================================================
// REPORTS (faturamento por período)
// ======================================================

func (h *StatsHandler) Reports(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		httperr.BadRequest(c, "missing_range", "Datas de início e fim são obrigatórias")
		return
	}

	var appointments []models.Appointment
	if err := h.db.
		Where("status = ? AND date BETWEEN ? AND ?", "completed", start, end).
		Order("date ASC, time ASC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_load_report", "Erro ao gerar relatório.")
		return
	}

	var total float64
	for _, ap := range appointments {
		total += ap.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": appointments,
		"total":        total,
		"count":        len(appointments),
	})
}
