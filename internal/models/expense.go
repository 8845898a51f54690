package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ExpensePaidByOwner   = "owner"
	ExpensePaidByCompany = "company"
	ExpensePaidByVendor  = "vendor"
)

var (
	ErrInvalidExpensePayer  = errors.New("invalid expense payer")
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")
)

// Expense represents a property-related cost. Only owner- and company-paid
// expenses participate in reconciliation; vendor-paid expenses never affect
// the owner balance.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"property_id"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'GHS'" json:"currency"`
	PaidBy      string          `gorm:"type:varchar(20);not null" json:"paid_by"`
	Category    string          `gorm:"type:varchar(50)" json:"category,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
	Owner    Owner    `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.Date.IsZero() {
		e.Date = now
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.PropertyID == uuid.Nil {
		return errors.New("property ID is required")
	}

	if e.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if e.Description == "" {
		return errors.New("expense description is required")
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidExpenseAmount
	}

	if e.Currency == "" || len(e.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}

	if !IsValidExpensePayer(e.PaidBy) {
		return ErrInvalidExpensePayer
	}

	return nil
}

// CountsTowardOwnerBalance reports whether the expense participates in
// owner reconciliation at all.
func (e *Expense) CountsTowardOwnerBalance() bool {
	return e.PaidBy == ExpensePaidByOwner || e.PaidBy == ExpensePaidByCompany
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}

// IsValidExpensePayer checks if the paid-by value is valid
func IsValidExpensePayer(paidBy string) bool {
	switch paidBy {
	case ExpensePaidByOwner, ExpensePaidByCompany, ExpensePaidByVendor:
		return true
	default:
		return false
	}
}
