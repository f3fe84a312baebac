package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Wallet struct {
	ID             uint            `gorm:"primarykey" json:"id"`
	OwnerID        uint            `gorm:"index;not null" json:"owner_id"`
	Name           string          `gorm:"not null" json:"name"`
	Description    string          `json:"description"`
	Currency       string          `gorm:"size:3;not null;default:'EUR'" json:"currency"`
	Icon           string          `json:"icon"`
	Color          string          `json:"color"`
	Balance        decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"balance"`
	InitialBalance decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"initial_balance"`
	Active         bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// A new wallet opens at its initial balance.
	w.Balance = w.InitialBalance
	return nil
}
