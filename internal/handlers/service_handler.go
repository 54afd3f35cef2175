package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/httpresp"
	"github.com/lumiere-salon/salon-scheduler/internal/middleware"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

type ServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Icon        string  `json:"icon"`
	ImageURL    string  `json:"image_url"`
}

// ======================================================
// LIST (público — alimenta a vitrine do site)
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.OK(c, services)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nome e preço são obrigatórios"})
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Icon:        req.Icon,
		ImageURL:    req.ImageURL,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "SERVICE_CREATE",
		Details: fmt.Sprintf("Criou serviço: %s (R$ %.2f)", service.Name, service.Price),
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"id": service.ID, "message": "Serviço criado com sucesso"})
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res := h.db.Model(&models.Service{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        req.Name,
			"description": req.Description,
			"price":       req.Price,
			"icon":        req.Icon,
			"image_url":   req.ImageURL,
		})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "SERVICE_UPDATE",
		Details: fmt.Sprintf("Atualizou serviço ID: %d", id),
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"changes": res.RowsAffected})
}

// ======================================================
// DELETE
// ======================================================

func (h *ServiceHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao excluir serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "SERVICE_DELETE",
		Details: fmt.Sprintf("Excluiu serviço ID: %d", id),
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"changes": res.RowsAffected})
}
