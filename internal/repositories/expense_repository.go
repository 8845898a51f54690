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
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// GetByOwnerAndPeriod retrieves expenses for an owner by expense date range.
// No status filter: every recorded expense in the window participates.
func (r *expenseRepository) GetByOwnerAndPeriod(ownerID uuid.UUID, periodStart, periodEnd time.Time) ([]models.Expense, error) {
	var expenses []models.Expense

	if err := r.db.Where("owner_id = ? AND date BETWEEN ? AND ?", ownerID, periodStart, periodEnd).
		Order("date ASC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses for owner period: %w", err)
	}

	return expenses, nil
}
