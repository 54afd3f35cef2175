package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/httpresp"
	"github.com/lumiere-salon/salon-scheduler/internal/middleware"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER — gestão de usuários (somente admin)
// ======================================================

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// ======================================================
// LIST
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Order("created_at DESC").
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	httpresp.List(c, users)
}

// ======================================================
// CREATE
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Usuário e senha são obrigatórios"})
		return
	}

	if len(req.Password) < 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Senha deve ter pelo menos 4 caracteres"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar usuário.")
		return
	}

	if req.FullName == "" {
		req.FullName = req.Username
	}
	if req.Role == "" {
		req.Role = "admin"
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Role:         req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if isUniqueErr(err) {
			httperr.Conflict(c, "username_taken", "Nome de usuário já existe")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "USER_CREATE",
		Details: fmt.Sprintf("Criou novo usuário: %s (Role: %s)", user.Username, user.Role),
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "message": "Usuário criado com sucesso"})
}

// ======================================================
// UPDATE
// ======================================================

func (h *UserHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updates := map[string]any{
		"username":  req.Username,
		"full_name": req.FullName,
		"role":      req.Role,
	}

	details := fmt.Sprintf("Atualizou usuário ID: %d", id)

	if req.Password != "" {
		if len(req.Password) < 4 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Senha deve ter pelo menos 4 caracteres"})
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar usuário.")
			return
		}
		updates["password_hash"] = string(hashed)
		details = fmt.Sprintf("Atualizou usuário ID: %d (incluindo senha)", id)
	}

	res := h.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if isUniqueErr(res.Error) {
			httperr.Conflict(c, "username_taken", "Nome de usuário já existe")
			return
		}
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "USER_UPDATE",
		Details: details,
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"changes": res.RowsAffected, "message": "Usuário atualizado com sucesso"})
}

// ======================================================
// DELETE
// ======================================================

func (h *UserHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if uint(id) == actorID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Você não pode excluir sua própria conta"})
		return
	}

	res := h.db.Delete(&models.User{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro ao excluir usuário.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  &actorID,
		Action:  "USER_DELETE",
		Details: fmt.Sprintf("Excluiu usuário ID: %d", id),
		IP:      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"changes": res.RowsAffected, "message": "Usuário excluído com sucesso"})
}
