package repositories

import (
	"errors"
	"fmt"

	"rental-backoffice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOwnerNotFound = errors.New("owner not found")
)

// ownerRepository implements OwnerRepositoryInterface
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) OwnerRepositoryInterface {
	return &ownerRepository{
		db: db,
	}
}

// GetByID retrieves an owner by ID
func (r *ownerRepository) GetByID(id uuid.UUID) (*models.Owner, error) {
	owner := &models.Owner{ID: id}
	if err := r.db.First(owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return owner, nil
}
