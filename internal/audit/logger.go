package audit

import (
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	details string,
	ip string,
) error {

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	}

	return l.db.Create(&entry).Error
}
