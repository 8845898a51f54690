package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rental-backoffice/internal/models"
	"rental-backoffice/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPayoutAmount = errors.New("payout amount must be positive")
	ErrInvalidPayoutMethod = errors.New("invalid payout method")
)

type walletService struct {
	walletRepo repositories.WalletRepositoryInterface
	ownerRepo  repositories.OwnerRepositoryInterface
	metrics    MetricsRecorderInterface
}

// NewWalletService creates the wallet service
func NewWalletService(
	walletRepo repositories.WalletRepositoryInterface,
	ownerRepo repositories.OwnerRepositoryInterface,
	metrics MetricsRecorderInterface,
) WalletServiceInterface {
	return &walletService{
		walletRepo: walletRepo,
		ownerRepo:  ownerRepo,
		metrics:    metrics,
	}
}

// GetWallet returns the owner's wallet, creating an empty one on first read
// so new owners always see a zero balance rather than a missing resource.
func (s *walletService) GetWallet(ctx context.Context, ownerID uuid.UUID) (*models.OwnerWallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := s.ownerRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, repositories.ErrOwnerNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify owner: %w", err)
	}

	wallet, err := s.walletRepo.GetOrCreate(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wallet: %w", err)
	}

	return wallet, nil
}

// CreatePayout records a payout to the owner and decrements the wallet
// balance in the same transaction. The balance may go negative: a payout
// ahead of an owner-flow period is an advance, not an error.
func (s *walletService) CreatePayout(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal, currency, method, reference string) (*models.Payout, *models.OwnerWallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrInvalidPayoutAmount
	}

	if !models.IsValidPayoutMethod(method) {
		return nil, nil, ErrInvalidPayoutMethod
	}

	if _, err := s.ownerRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, repositories.ErrOwnerNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to verify owner: %w", err)
	}

	payout := &models.Payout{
		OwnerID:   ownerID,
		Amount:    amount,
		Currency:  currency,
		Method:    method,
		Reference: reference,
	}

	wallet, err := s.walletRepo.ApplyPayout(payout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to apply payout: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("wallet.payout.created", map[string]string{"method": method})
	}

	slog.Info("payout created",
		"payout_id", payout.ID,
		"owner_id", ownerID,
		"amount", amount,
		"method", method,
		"wallet_balance", wallet.CurrentBalance)

	return payout, wallet, nil
}

// RegisterOwnerFlowCommission increments the commission the owner owes the
// company, used when an owner-flow booking is recorded outside a statement
// run. Finalizing a statement settles the figure down again.
func (s *walletService) RegisterOwnerFlowCommission(ctx context.Context, ownerID uuid.UUID, commission decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if commission.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("commission must be positive, got %s", commission)
	}

	if err := s.walletRepo.AddCommissionPayable(ownerID, commission); err != nil {
		return fmt.Errorf("failed to register commission payable: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("wallet.commission.registered", nil)
	}

	return nil
}
