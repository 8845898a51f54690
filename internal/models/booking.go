package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentReceivedByCompany = "company"
	PaymentReceivedByOwner   = "owner"

	BookingStatusUpcoming  = "upcoming"
	BookingStatusCheckedIn = "checked_in"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

var (
	ErrInvalidPaymentFlow   = errors.New("invalid payment flow")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

// Booking represents a guest stay at a property. Bookings are inputs to the
// reconciliation engine and are never mutated by it.
type Booking struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"property_id"`
	OwnerID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	GuestName         string          `gorm:"type:varchar(255)" json:"guest_name,omitempty"`
	CheckInDate       time.Time       `gorm:"not null;index" json:"check_in_date"`
	CheckOutDate      time.Time       `json:"check_out_date"`
	Currency          string          `gorm:"type:varchar(3);not null;default:'GHS'" json:"currency"`
	BaseAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"base_amount"`
	CleaningFee       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"cleaning_fee"`
	PlatformFees      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"platform_fees"`
	Taxes             decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"taxes"`
	PaymentReceivedBy string          `gorm:"type:varchar(20);not null" json:"payment_received_by"`
	Status            string          `gorm:"type:varchar(20);not null;default:'upcoming'" json:"status"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
	Owner    Owner    `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for Booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	if b.Status == "" {
		b.Status = BookingStatusUpcoming
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Booking
func (b *Booking) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the booking fields
func (b *Booking) Validate() error {
	if b.PropertyID == uuid.Nil {
		return errors.New("property ID is required")
	}

	if b.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if b.CheckInDate.IsZero() {
		return errors.New("check-in date is required")
	}

	if b.Currency == "" || len(b.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}

	if !IsValidPaymentFlow(b.PaymentReceivedBy) {
		return ErrInvalidPaymentFlow
	}

	if !IsValidBookingStatus(b.Status) {
		return ErrInvalidBookingStatus
	}

	return nil
}

// GrossRevenue returns the commissionable revenue of the booking.
// Platform fees and taxes are excluded from the commission base.
func (b *Booking) GrossRevenue() decimal.Decimal {
	return b.BaseAmount.Add(b.CleaningFee)
}

// IsCompleted returns true once the stay has concluded. Amounts and currency
// are fixed from this point on.
func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

// TableName returns the table name for Booking
func (b *Booking) TableName() string {
	return "bookings"
}

// IsValidPaymentFlow checks if the payment flow value is valid
func IsValidPaymentFlow(flow string) bool {
	switch flow {
	case PaymentReceivedByCompany, PaymentReceivedByOwner:
		return true
	default:
		return false
	}
}

// IsValidBookingStatus checks if the booking status is valid
func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusUpcoming, BookingStatusCheckedIn, BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}
