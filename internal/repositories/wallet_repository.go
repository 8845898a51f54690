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
	ErrWalletNotFound = errors.New("owner wallet not found")
)

// walletRepository implements WalletRepositoryInterface
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) WalletRepositoryInterface {
	return &walletRepository{
		db: db,
	}
}

// GetOrCreate returns the owner's wallet, creating it lazily with zero balances
func (r *walletRepository) GetOrCreate(ownerID uuid.UUID) (*models.OwnerWallet, error) {
	var wallet models.OwnerWallet

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", ownerID).First(&wallet).Error; err == nil {
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get wallet: %w", err)
		}

		wallet = models.OwnerWallet{
			OwnerID:            ownerID,
			CurrentBalance:     decimal.Zero,
			CommissionsPayable: decimal.Zero,
		}
		if err := tx.Create(&wallet).Error; err != nil {
			return fmt.Errorf("failed to create wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &wallet, nil
}

// GetByOwnerID returns the wallet or ErrWalletNotFound
func (r *walletRepository) GetByOwnerID(ownerID uuid.UUID) (*models.OwnerWallet, error) {
	var wallet models.OwnerWallet
	if err := r.db.Where("owner_id = ?", ownerID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// ApplyPayout decrements the wallet balance and records the payout in one
// transaction. The wallet row is locked to serialize concurrent payouts and
// finalizations for the same owner.
func (r *walletRepository) ApplyPayout(payout *models.Payout) (*models.OwnerWallet, error) {
	var wallet models.OwnerWallet

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Row-level locking prevents lost updates from concurrent mutations
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ?", payout.OwnerID).
			First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWalletNotFound
			}
			return fmt.Errorf("failed to lock wallet for payout: %w", err)
		}

		wallet.CurrentBalance = wallet.CurrentBalance.Sub(payout.Amount)
		if err := tx.Save(&wallet).Error; err != nil {
			return fmt.Errorf("failed to update wallet balance: %w", err)
		}

		if err := tx.Create(payout).Error; err != nil {
			return fmt.Errorf("failed to record payout: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &wallet, nil
}

// AddCommissionPayable increments the owner's commissions-payable figure
// under the wallet row lock, creating the wallet if needed
func (r *walletRepository) AddCommissionPayable(ownerID uuid.UUID, amount decimal.Decimal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var wallet models.OwnerWallet

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ?", ownerID).
			First(&wallet).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			wallet = models.OwnerWallet{
				OwnerID:            ownerID,
				CurrentBalance:     decimal.Zero,
				CommissionsPayable: amount,
			}
			if err := tx.Create(&wallet).Error; err != nil {
				return fmt.Errorf("failed to create wallet: %w", err)
			}
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to lock wallet: %w", err)
		}

		wallet.CommissionsPayable = wallet.CommissionsPayable.Add(amount)
		if err := tx.Save(&wallet).Error; err != nil {
			return fmt.Errorf("failed to update commissions payable: %w", err)
		}
		return nil
	})
}
