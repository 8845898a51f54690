package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PayoutMethodBankTransfer = "bank_transfer"
	PayoutMethodMobileMoney  = "mobile_money"
	PayoutMethodCash         = "cash"
)

var (
	ErrInvalidPayoutMethod = errors.New("invalid payout method")
	ErrInvalidPayoutAmount = errors.New("payout amount must be positive")
)

// Payout records money paid out to an owner. Creating one decrements the
// owner's wallet balance in the same transaction.
type Payout struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'GHS'" json:"currency"`
	Method    string          `gorm:"type:varchar(30);not null" json:"method"`
	Reference string          `gorm:"type:varchar(100)" json:"reference,omitempty"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`

	// Associations
	Owner Owner `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for Payout
func (p *Payout) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	return p.Validate()
}

// Validate validates the payout fields
func (p *Payout) Validate() error {
	if p.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPayoutAmount
	}

	if len(p.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}

	if !IsValidPayoutMethod(p.Method) {
		return ErrInvalidPayoutMethod
	}

	return nil
}

// TableName returns the table name for Payout
func (p *Payout) TableName() string {
	return "payouts"
}

// IsValidPayoutMethod checks if the payout method is valid
func IsValidPayoutMethod(method string) bool {
	switch method {
	case PayoutMethodBankTransfer, PayoutMethodMobileMoney, PayoutMethodCash:
		return true
	default:
		return false
	}
}
