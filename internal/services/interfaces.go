package services

import (
	"context"
	"time"

	"rental-backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GenerateStatementInput carries the parameters for one statement run.
// Policy choices (which bookings count, how the opening balance is seeded)
// are explicit here instead of being implied by the calling route.
type GenerateStatementInput struct {
	OwnerID         uuid.UUID
	PeriodStart     time.Time
	PeriodEnd       time.Time
	DisplayCurrency string

	// CarryWalletBalance seeds OpeningBalance from the owner's current
	// wallet balance instead of the default 0 (self-contained period).
	CarryWalletBalance bool
}

// FinalizeResult is the outcome of a successful finalization. Rendering and
// notification run after the state transition has committed; their failures
// are reported as warnings, never as a failure of the finalize itself.
type FinalizeResult struct {
	Statement *models.Statement
	Wallet    *models.OwnerWallet
	Document  []byte
	Warnings  []string
}

// StatementBuilderServiceInterface produces draft statements
type StatementBuilderServiceInterface interface {
	// GenerateStatement aggregates bookings and expenses for the owner and
	// period, reconciles them in the display currency, and persists a draft
	// statement with its lines as one atomic write. A failed run leaves no
	// trace.
	GenerateStatement(ctx context.Context, input GenerateStatementInput) (*models.Statement, error)
}

// StatementLifecycleServiceInterface drives the draft -> finalized state
// machine and the read/delete paths
type StatementLifecycleServiceInterface interface {
	// FinalizeStatement atomically flips a draft to finalized and applies
	// its net figure to the owner's wallet.
	FinalizeStatement(ctx context.Context, statementID uuid.UUID) (*FinalizeResult, error)

	// DeleteStatement removes a draft statement and its lines. Finalized
	// statements are immutable and cannot be deleted.
	DeleteStatement(ctx context.Context, statementID uuid.UUID) error

	// GetStatement returns the statement with its lines.
	GetStatement(ctx context.Context, statementID uuid.UUID) (*models.Statement, error)

	// ListStatements returns an owner's statements, newest period first.
	ListStatements(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]models.Statement, int64, error)
}

// WalletServiceInterface exposes wallet reads and payout creation
type WalletServiceInterface interface {
	GetWallet(ctx context.Context, ownerID uuid.UUID) (*models.OwnerWallet, error)
	CreatePayout(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal, currency, method, reference string) (*models.Payout, *models.OwnerWallet, error)

	// RegisterOwnerFlowCommission records commission owed by the owner for a
	// booking whose payment the owner received directly.
	RegisterOwnerFlowCommission(ctx context.Context, ownerID uuid.UUID, commission decimal.Decimal) error
}

// CurrencyConverterInterface converts money between currencies.
//
// asOf selects the rate mode: nil means the current rate; a timestamp pins
// the conversion to the rate recorded at that time, which downstream reports
// need for historical fidelity. A missing pair is an error, never a silent
// identity conversion.
type CurrencyConverterInterface interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string, asOf *time.Time) (decimal.Decimal, error)
}

// StatementRendererInterface renders a finalized statement into a document.
// Rendering is a post-commit side effect of finalization.
type StatementRendererInterface interface {
	Render(ctx context.Context, statement *models.Statement) ([]byte, error)
}

// OwnerNotifierInterface notifies an owner that a statement was finalized.
// Delivery mechanics live outside this engine; failures are warnings.
type OwnerNotifierInterface interface {
	NotifyStatementFinalized(ctx context.Context, ownerID uuid.UUID, statement *models.Statement) error
}

// MetricsRecorderInterface abstracts metric recording for services
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
