package repositories

import (
	"errors"
	"fmt"
	"time"

	"rental-backoffice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

// bookingRepository implements BookingRepositoryInterface
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) BookingRepositoryInterface {
	return &bookingRepository{
		db: db,
	}
}

// GetByOwnerAndPeriod retrieves bookings for an owner by check-in date range,
// optionally filtered to a set of statuses
func (r *bookingRepository) GetByOwnerAndPeriod(ownerID uuid.UUID, periodStart, periodEnd time.Time, statuses []string) ([]models.Booking, error) {
	var bookings []models.Booking

	query := r.db.Where("owner_id = ? AND check_in_date BETWEEN ? AND ?", ownerID, periodStart, periodEnd)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	if err := query.Order("check_in_date ASC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to get bookings for owner period: %w", err)
	}

	return bookings, nil
}
