package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	"github.com/lumiere-salon/salon-scheduler/internal/backup"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/middleware"
)

type BackupHandler struct {
	manager *backup.Manager
	audit   *audit.Dispatcher
}

func NewBackupHandler(manager *backup.Manager, dispatcher *audit.Dispatcher) *BackupHandler {
	return &BackupHandler{manager: manager, audit: dispatcher}
}

func (h *BackupHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	path, err := h.manager.Create(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "backup_failed", "Erro ao criar backup.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "BACKUP_CREATE",
		Details: "Criou backup manual do banco de dados",
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"path":    path,
		"message": "Backup criado com sucesso",
	})
}

func (h *BackupHandler) List(c *gin.Context) {
	backups, err := h.manager.List()
	if err != nil {
		httperr.Internal(c, "failed_to_list_backups", "Erro ao listar backups.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"backups": backups})
}
