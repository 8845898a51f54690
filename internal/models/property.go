package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCommissionRate = errors.New("commission rate must be a fraction between 0 and 1")
)

// Property represents a managed rental listing. The engine reads it only for
// the commission rate applied to each booking's gross revenue.
type Property struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID               uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name                  string          `gorm:"type:varchar(255);not null" json:"name"`
	Address               string          `gorm:"type:text" json:"address,omitempty"`
	DefaultCommissionRate decimal.Decimal `gorm:"type:decimal(5,4);not null;default:0.15" json:"default_commission_rate"`
	Active                bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Owner Owner `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for Property
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// BeforeUpdate hook for Property
func (p *Property) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

// Validate validates the property fields
func (p *Property) Validate() error {
	if p.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if p.Name == "" {
		return errors.New("property name is required")
	}

	// A rate of 0 is valid: the company takes no commission on the listing.
	if p.DefaultCommissionRate.LessThan(decimal.Zero) || p.DefaultCommissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return ErrInvalidCommissionRate
	}

	return nil
}

// TableName returns the table name for Property
func (p *Property) TableName() string {
	return "properties"
}
