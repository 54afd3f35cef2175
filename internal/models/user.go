package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100" json:"full_name"`
	Role         string `gorm:"size:20;default:'admin'" json:"role"`

	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}
