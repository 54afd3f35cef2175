package models

import "time"

// Cliente simples, sem login. Telefone guardado apenas com dígitos
// (10 ou 11) e é a chave natural de deduplicação.
type Client struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:11;uniqueIndex;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
