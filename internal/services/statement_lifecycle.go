package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rental-backoffice/internal/models"
	"rental-backoffice/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrStatementNotDraft    = errors.New("statement is not in draft status")
	ErrStatementUndeletable = errors.New("finalized statements cannot be deleted")
)

type statementLifecycleService struct {
	statementRepo repositories.StatementRepositoryInterface
	walletRepo    repositories.WalletRepositoryInterface
	renderer      StatementRendererInterface
	notifier      OwnerNotifierInterface
	metrics       MetricsRecorderInterface
}

// NewStatementLifecycleService creates the lifecycle service
func NewStatementLifecycleService(
	statementRepo repositories.StatementRepositoryInterface,
	walletRepo repositories.WalletRepositoryInterface,
	renderer StatementRendererInterface,
	notifier OwnerNotifierInterface,
	metrics MetricsRecorderInterface,
) StatementLifecycleServiceInterface {
	return &statementLifecycleService{
		statementRepo: statementRepo,
		walletRepo:    walletRepo,
		renderer:      renderer,
		notifier:      notifier,
		metrics:       metrics,
	}
}

// FinalizeStatement flips a draft statement to finalized and settles it into
// the owner's wallet in one transaction. Rendering and notification run only
// after that commit; their failures surface as warnings because the statement
// is already final and must not be rolled back for a side effect.
func (s *statementLifecycleService) FinalizeStatement(ctx context.Context, statementID uuid.UUID) (*FinalizeResult, error) {
	start := time.Now()

	statement, wallet, err := s.statementRepo.FinalizeAndApplyToWallet(statementID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrStatementNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repositories.ErrStatementNotDraft):
			return nil, ErrStatementNotDraft
		}
		return nil, fmt.Errorf("failed to finalize statement: %w", err)
	}

	result := &FinalizeResult{
		Statement: statement,
		Wallet:    wallet,
	}

	if s.renderer != nil {
		document, err := s.renderer.Render(ctx, statement)
		if err != nil {
			slog.Warn("statement finalized but rendering failed",
				"statement_id", statement.ID, "error", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("rendering failed: %v", err))
		} else {
			result.Document = document
		}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyStatementFinalized(ctx, statement.OwnerID, statement); err != nil {
			slog.Warn("statement finalized but owner notification failed",
				"statement_id", statement.ID, "owner_id", statement.OwnerID, "error", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("notification failed: %v", err))
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("statement.finalized", nil)
		s.metrics.RecordProcessingTime("statement.finalization", time.Since(start))
	}

	slog.Info("statement finalized",
		"statement_id", statement.ID,
		"owner_id", statement.OwnerID,
		"net_to_owner", statement.NetToOwner,
		"wallet_balance", wallet.CurrentBalance,
		"warnings", len(result.Warnings))

	return result, nil
}

// DeleteStatement removes a draft statement with its lines. Finalized
// statements are part of the permanent financial record and stay.
func (s *statementLifecycleService) DeleteStatement(ctx context.Context, statementID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.statementRepo.DeleteDraft(statementID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStatementNotFound):
			return ErrNotFound
		case errors.Is(err, repositories.ErrStatementNotDeletable):
			return ErrStatementUndeletable
		}
		return fmt.Errorf("failed to delete statement: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("statement.deleted", nil)
	}

	slog.Info("draft statement deleted", "statement_id", statementID)
	return nil
}

func (s *statementLifecycleService) GetStatement(ctx context.Context, statementID uuid.UUID) (*models.Statement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	statement, err := s.statementRepo.GetWithLines(statementID)
	if err != nil {
		if errors.Is(err, repositories.ErrStatementNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch statement: %w", err)
	}

	return statement, nil
}

func (s *statementLifecycleService) ListStatements(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]models.Statement, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	statements, total, err := s.statementRepo.ListByOwner(ownerID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list statements: %w", err)
	}

	return statements, total, nil
}
