package repositories

import (
	"errors"
	"fmt"

	"rental-backoffice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
)

// propertyRepository implements PropertyRepositoryInterface
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) PropertyRepositoryInterface {
	return &propertyRepository{
		db: db,
	}
}

// GetByID retrieves a property by ID
func (r *propertyRepository) GetByID(id uuid.UUID) (*models.Property, error) {
	property := &models.Property{ID: id}
	if err := r.db.First(property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

// GetByOwnerID retrieves all properties belonging to an owner
func (r *propertyRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to get properties for owner: %w", err)
	}
	return properties, nil
}
