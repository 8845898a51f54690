package repositories

import (
	"errors"
	"fmt"

	"rental-backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStatementNotFound     = errors.New("statement not found")
	ErrStatementNotDraft     = errors.New("statement is not in draft state")
	ErrStatementNotDeletable = errors.New("finalized statements cannot be deleted")
)

// statementRepository implements StatementRepositoryInterface
type statementRepository struct {
	db *gorm.DB
}

// NewStatementRepository creates a new statement repository
func NewStatementRepository(db *gorm.DB) StatementRepositoryInterface {
	return &statementRepository{
		db: db,
	}
}

// CreateWithLines inserts the statement header and all lines in a single
// transaction so a statement with missing lines is never observable.
func (r *statementRepository) CreateWithLines(statement *models.Statement, lines []models.StatementLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(statement).Error; err != nil {
			return fmt.Errorf("failed to create statement: %w", err)
		}

		for i := range lines {
			lines[i].StatementID = statement.ID
		}

		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return fmt.Errorf("failed to create statement lines: %w", err)
			}
		}

		statement.Lines = lines
		return nil
	})
}

// GetByID retrieves a statement header by ID
func (r *statementRepository) GetByID(id uuid.UUID) (*models.Statement, error) {
	statement := &models.Statement{ID: id}
	if err := r.db.First(statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return statement, nil
}

// GetWithLines retrieves a statement with its lines preloaded
func (r *statementRepository) GetWithLines(id uuid.UUID) (*models.Statement, error) {
	var statement models.Statement
	if err := r.db.Preload("Lines").First(&statement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement with lines: %w", err)
	}
	return &statement, nil
}

// ListByOwner retrieves statements for an owner with pagination
func (r *statementRepository) ListByOwner(ownerID uuid.UUID, offset, limit int) ([]models.Statement, int64, error) {
	var statements []models.Statement
	var total int64

	if err := r.db.Model(&models.Statement{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count statements: %w", err)
	}

	if err := r.db.Where("owner_id = ?", ownerID).
		Offset(offset).Limit(limit).
		Order("period_start DESC").
		Find(&statements).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list statements: %w", err)
	}

	return statements, total, nil
}

// FinalizeAndApplyToWallet flips a draft statement to finalized and applies
// its net figure to the owner's wallet, all-or-nothing. The draft check and
// the status flip happen in the same transaction, so two concurrent finalize
// calls cannot both succeed; the wallet row is locked so concurrent
// finalizations for the same owner serialize their balance updates.
func (r *statementRepository) FinalizeAndApplyToWallet(id uuid.UUID) (*models.Statement, *models.OwnerWallet, error) {
	var statement models.Statement
	var wallet models.OwnerWallet

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&statement, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStatementNotFound
			}
			return fmt.Errorf("failed to lock statement: %w", err)
		}

		if !statement.IsDraft() {
			return ErrStatementNotDraft
		}

		// Lock or lazily create the wallet before touching balances.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ?", statement.OwnerID).
			First(&wallet).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			wallet = models.OwnerWallet{
				OwnerID:            statement.OwnerID,
				CurrentBalance:     decimal.Zero,
				CommissionsPayable: decimal.Zero,
				Currency:           statement.DisplayCurrency,
			}
			if err := tx.Create(&wallet).Error; err != nil {
				return fmt.Errorf("failed to create wallet: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to lock wallet: %w", err)
		}

		wallet.CurrentBalance = wallet.CurrentBalance.Add(statement.NetToOwner)

		// The statement settles at most what is payable; never go negative.
		settled := decimal.Min(statement.OwnerCommission, wallet.CommissionsPayable)
		wallet.CommissionsPayable = wallet.CommissionsPayable.Sub(settled)

		if err := statement.Finalize(wallet.CurrentBalance); err != nil {
			return err
		}

		if err := tx.Save(&statement).Error; err != nil {
			return fmt.Errorf("failed to finalize statement: %w", err)
		}

		if err := tx.Save(&wallet).Error; err != nil {
			return fmt.Errorf("failed to update wallet: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &statement, &wallet, nil
}

// DeleteDraft removes a draft statement together with its lines. The status
// guard lives here rather than in schema cascade rules: a finalized parent
// must block deletion of its children too.
func (r *statementRepository) DeleteDraft(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var statement models.Statement
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&statement, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStatementNotFound
			}
			return fmt.Errorf("failed to lock statement: %w", err)
		}

		if !statement.CanDelete() {
			return ErrStatementNotDeletable
		}

		if err := tx.Where("statement_id = ?", id).
			Delete(&models.StatementLine{}).Error; err != nil {
			return fmt.Errorf("failed to delete statement lines: %w", err)
		}

		if err := tx.Delete(&statement).Error; err != nil {
			return fmt.Errorf("failed to delete statement: %w", err)
		}

		return nil
	})
}
