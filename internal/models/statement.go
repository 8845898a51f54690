package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatementStatusDraft     = "draft"
	StatementStatusFinalized = "finalized"

	StatementLineTypeBooking    = "booking"
	StatementLineTypeExpense    = "expense"
	StatementLineTypeCommission = "commission"

	// CommissionLineDescription is the description of the single synthetic
	// commission line every statement carries.
	CommissionLineDescription = "Management Commission"
)

var (
	ErrInvalidStatementStatus = errors.New("invalid statement status")
	ErrInvalidLineType        = errors.New("invalid statement line type")
	ErrStatementFinalized     = errors.New("statement is finalized and immutable")
	ErrStatementNotDraft      = errors.New("statement is not in draft state")
)

// Statement is a period reconciliation for one owner: revenue split by who
// received the guest's payment, commission in each direction, expenses, and
// the net figure the company owes the owner (or vice versa).
//
// A statement is mutable (replaceable in full) only while in draft. Once
// finalized it is frozen: no field may change and the row cannot be deleted.
type Statement struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	PeriodStart     time.Time `gorm:"not null" json:"period_start"`
	PeriodEnd       time.Time `gorm:"not null" json:"period_end"`
	Status          string    `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	DisplayCurrency string    `gorm:"type:varchar(3);not null" json:"display_currency"`

	GrossRevenue      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"gross_revenue"`
	CompanyRevenue    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"company_revenue"`
	OwnerRevenue      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"owner_revenue"`
	TotalExpenses     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_expenses"`
	CommissionAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"commission_amount"`
	CompanyCommission decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"company_commission"`
	OwnerCommission   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"owner_commission"`
	NetToOwner        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"net_to_owner"`
	OpeningBalance    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"opening_balance"`
	ClosingBalance    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"closing_balance"`

	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`

	// Associations
	Owner Owner           `gorm:"foreignKey:OwnerID" json:"-"`
	Lines []StatementLine `gorm:"foreignKey:StatementID" json:"lines,omitempty"`
}

// StatementLine is one itemized row of a statement: a booking, an expense,
// or the single synthetic commission line. Lines are write-once and created
// atomically with the parent statement.
type StatementLine struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StatementID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"statement_id"`
	Type                    string          `gorm:"type:varchar(20);not null" json:"type"`
	ReferenceID             *uuid.UUID      `gorm:"type:uuid" json:"reference_id,omitempty"`
	Description             string          `gorm:"type:text;not null" json:"description"`
	Amount                  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency                string          `gorm:"type:varchar(3);not null" json:"currency"`
	AmountInDisplayCurrency decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount_in_display_currency"`
	CreatedAt               time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Statement
func (s *Statement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	if s.Status == "" {
		s.Status = StatementStatusDraft
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// BeforeUpdate hook for Statement
func (s *Statement) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return s.Validate()
}

// Validate validates the statement fields
func (s *Statement) Validate() error {
	if s.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if s.PeriodStart.IsZero() || s.PeriodEnd.IsZero() {
		return errors.New("statement period is required")
	}

	if s.PeriodStart.After(s.PeriodEnd) {
		return errors.New("period start must not be after period end")
	}

	if !IsValidStatementStatus(s.Status) {
		return ErrInvalidStatementStatus
	}

	if len(s.DisplayCurrency) != 3 {
		return errors.New("display currency must be a 3-letter code")
	}

	return nil
}

// IsDraft returns true while the statement can still be replaced or deleted
func (s *Statement) IsDraft() bool {
	return s.Status == StatementStatusDraft
}

// IsFinalized returns true once the statement has been applied to the wallet
func (s *Statement) IsFinalized() bool {
	return s.Status == StatementStatusFinalized
}

// Finalize flips the statement to its terminal state. The caller is
// responsible for performing the wallet update in the same transaction.
func (s *Statement) Finalize(closingBalance decimal.Decimal) error {
	if !s.IsDraft() {
		return ErrStatementNotDraft
	}

	now := time.Now()
	s.Status = StatementStatusFinalized
	s.ClosingBalance = closingBalance
	s.FinalizedAt = &now
	return nil
}

// CanDelete reports whether the statement may be removed. Finalized
// statements are part of the audit trail and can never be deleted.
func (s *Statement) CanDelete() bool {
	return s.IsDraft()
}

// TableName returns the table name for Statement
func (s *Statement) TableName() string {
	return "statements"
}

// BeforeCreate hook for StatementLine
func (l *StatementLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	return l.Validate()
}

// Validate validates the statement line fields
func (l *StatementLine) Validate() error {
	if l.StatementID == uuid.Nil {
		return errors.New("statement ID is required")
	}

	if !IsValidStatementLineType(l.Type) {
		return ErrInvalidLineType
	}

	// Only the synthetic commission line may omit a reference.
	if l.Type != StatementLineTypeCommission && l.ReferenceID == nil {
		return errors.New("booking and expense lines require a reference ID")
	}

	if l.Description == "" {
		return errors.New("line description is required")
	}

	if len(l.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}

	return nil
}

// TableName returns the table name for StatementLine
func (l *StatementLine) TableName() string {
	return "statement_lines"
}

// IsValidStatementStatus checks if the statement status is valid
func IsValidStatementStatus(status string) bool {
	switch status {
	case StatementStatusDraft, StatementStatusFinalized:
		return true
	default:
		return false
	}
}

// IsValidStatementLineType checks if the line type is valid
func IsValidStatementLineType(lineType string) bool {
	switch lineType {
	case StatementLineTypeBooking, StatementLineTypeExpense, StatementLineTypeCommission:
		return true
	default:
		return false
	}
}
