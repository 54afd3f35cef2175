package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Service string `gorm:"size:100;not null" json:"service"`

	// Data e horário são strings opacas ("2006-01-02" / "15:04").
	// O índice único composto garante no máximo um agendamento por
	// (date, time) em todo o sistema — uma cadeira só.
	Date string `gorm:"size:10;not null;uniqueIndex:idx_slot" json:"date"`
	Time string `gorm:"size:5;not null;uniqueIndex:idx_slot" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	PaymentMethod string  `gorm:"size:30" json:"payment_method"`
	Amount        float64 `json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
