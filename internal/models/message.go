package models

import "time"

// Registro de envio em massa. A entrega em si acontece no cliente,
// via link para o app de chat — o servidor só guarda o histórico.
type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	RecipientCount int       `json:"recipient_count"`
	SentAt         time.Time `gorm:"autoCreateTime" json:"sent_at"`
}
