package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OwnerWallet tracks the running balance between the company and one owner.
// CurrentBalance is signed: positive means the company owes the owner.
// CommissionsPayable is what the owner still owes the company for bookings
// where the owner received the guest's payment directly.
//
// The wallet is mutated only by payout creation, statement finalization, and
// owner-flow booking registration. It is created lazily with zero balances.
type OwnerWallet struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"owner_id"`
	CurrentBalance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_balance"`
	CommissionsPayable decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"commissions_payable"`
	Currency           string          `gorm:"type:varchar(3);not null;default:'GHS'" json:"currency"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Owner Owner `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for OwnerWallet
func (w *OwnerWallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}

	if w.Currency == "" {
		w.Currency = "GHS"
	}

	now := time.Now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = now
	}

	return w.Validate()
}

// BeforeUpdate hook for OwnerWallet
func (w *OwnerWallet) BeforeUpdate(tx *gorm.DB) error {
	w.UpdatedAt = time.Now()
	return w.Validate()
}

// Validate validates the wallet fields
func (w *OwnerWallet) Validate() error {
	if w.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if w.CommissionsPayable.LessThan(decimal.Zero) {
		return errors.New("commissions payable cannot be negative")
	}

	return nil
}

// TableName returns the table name for OwnerWallet
func (w *OwnerWallet) TableName() string {
	return "owner_wallets"
}
