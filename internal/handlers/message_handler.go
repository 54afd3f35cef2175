package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/httpresp"
	"github.com/lumiere-salon/salon-scheduler/internal/middleware"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

// MessageHandler registra os disparos em massa feitos pelo painel
// (o envio em si acontece pelo WhatsApp do salão; aqui fica o histórico).
type MessageHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMessageHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *MessageHandler {
	return &MessageHandler{db: db, audit: dispatcher}
}

type CreateMessageRequest struct {
	Content        string `json:"content"`
	RecipientCount int    `json:"recipient_count"`
}

func (h *MessageHandler) List(c *gin.Context) {
	var messages []models.Message
	if err := h.db.
		Order("sent_at DESC").
		Limit(50).
		Find(&messages).Error; err != nil {

		httperr.Internal(c, "failed_to_list_messages", "Erro ao listar mensagens.")
		return
	}

	httpresp.OK(c, messages)
}

func (h *MessageHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Conteúdo da mensagem é obrigatório"})
		return
	}

	msg := models.Message{
		Content:        req.Content,
		RecipientCount: req.RecipientCount,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_create_message", "Erro ao registrar mensagem.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "MESSAGE_BULK_SEND",
		Details: fmt.Sprintf("Registrou envio em massa para %d destinatários", req.RecipientCount),
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"id": msg.ID})
}
