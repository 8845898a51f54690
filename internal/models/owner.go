package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner represents a property owner the company manages listings for.
type Owner struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name              string         `gorm:"type:varchar(255);not null" json:"name"`
	Email             string         `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Phone             string         `gorm:"type:varchar(30)" json:"phone,omitempty"`
	PreferredCurrency string         `gorm:"type:varchar(3);not null;default:'GHS'" json:"preferred_currency"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	Properties []Property   `gorm:"foreignKey:OwnerID" json:"-"`
	Wallet     *OwnerWallet `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for Owner
func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}

	if o.PreferredCurrency == "" {
		o.PreferredCurrency = "GHS"
	}

	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}

	return o.Validate()
}

// BeforeUpdate hook for Owner
func (o *Owner) BeforeUpdate(tx *gorm.DB) error {
	o.UpdatedAt = time.Now()
	return o.Validate()
}

// Validate validates the owner fields
func (o *Owner) Validate() error {
	if o.Name == "" {
		return errors.New("owner name is required")
	}

	if len(o.PreferredCurrency) != 3 {
		return errors.New("preferred currency must be a 3-letter code")
	}

	return nil
}

// TableName returns the table name for Owner
func (o *Owner) TableName() string {
	return "owners"
}
