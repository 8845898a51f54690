package repositories

import (
	"time"

	"rental-backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerRepositoryInterface provides read access to owners
type OwnerRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Owner, error)
}

// PropertyRepositoryInterface provides read access to properties
type PropertyRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Property, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.Property, error)
}

// BookingRepositoryInterface provides read access to bookings
type BookingRepositoryInterface interface {
	// GetByOwnerAndPeriod returns bookings for an owner whose check-in date
	// falls within [periodStart, periodEnd], optionally filtered to a status
	// set. An empty status set means all statuses.
	GetByOwnerAndPeriod(ownerID uuid.UUID, periodStart, periodEnd time.Time, statuses []string) ([]models.Booking, error)
}

// ExpenseRepositoryInterface provides read access to expenses
type ExpenseRepositoryInterface interface {
	// GetByOwnerAndPeriod returns expenses for an owner dated within
	// [periodStart, periodEnd]. Expenses carry no status filter.
	GetByOwnerAndPeriod(ownerID uuid.UUID, periodStart, periodEnd time.Time) ([]models.Expense, error)
}

// WalletRepositoryInterface manages the owner wallet aggregate.
// The wallet is the only contended shared resource in the engine; every
// mutation happens under a row-level lock inside a transaction.
type WalletRepositoryInterface interface {
	// GetOrCreate returns the owner's wallet, creating it with zero
	// balances if it does not yet exist.
	GetOrCreate(ownerID uuid.UUID) (*models.OwnerWallet, error)

	// GetByOwnerID returns the wallet or ErrWalletNotFound.
	GetByOwnerID(ownerID uuid.UUID) (*models.OwnerWallet, error)

	// ApplyPayout atomically decrements the wallet balance and records the
	// payout in the same transaction.
	ApplyPayout(payout *models.Payout) (*models.OwnerWallet, error)

	// AddCommissionPayable atomically increments the commissions-payable
	// figure, used when an owner-flow booking is registered.
	AddCommissionPayable(ownerID uuid.UUID, amount decimal.Decimal) error
}

// StatementRepositoryInterface persists statement aggregates
type StatementRepositoryInterface interface {
	// CreateWithLines inserts the statement header and all lines in one
	// transaction. A partially written statement is never observable.
	CreateWithLines(statement *models.Statement, lines []models.StatementLine) error

	// GetByID returns the statement header or ErrStatementNotFound.
	GetByID(id uuid.UUID) (*models.Statement, error)

	// GetWithLines returns the statement with its lines preloaded.
	GetWithLines(id uuid.UUID) (*models.Statement, error)

	// ListByOwner returns statements for an owner, most recent period first.
	ListByOwner(ownerID uuid.UUID, offset, limit int) ([]models.Statement, int64, error)

	// FinalizeAndApplyToWallet atomically re-checks the draft precondition,
	// flips the statement to finalized, and applies NetToOwner to the
	// owner's wallet under a row lock. Returns the finalized statement and
	// the updated wallet, or leaves both untouched on any failure.
	FinalizeAndApplyToWallet(id uuid.UUID) (*models.Statement, *models.OwnerWallet, error)

	// DeleteDraft removes a draft statement and its lines. Finalized
	// statements are rejected with ErrStatementNotDeletable.
	DeleteDraft(id uuid.UUID) error
}
