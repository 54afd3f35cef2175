package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    *uint  `json:"user_id"`
	Action    string `gorm:"size:50;not null" json:"action"`
	Details   string `gorm:"type:text" json:"details"`
	IPAddress string `gorm:"size:45" json:"ip_address"`

	CreatedAt time.Time `json:"created_at"`
}
