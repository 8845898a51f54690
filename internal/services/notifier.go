package services

import (
	"context"
	"log/slog"

	"rental-backoffice/internal/models"

	"github.com/google/uuid"
)

// logOwnerNotifier records finalization events in the structured log.
// Real delivery channels (email, SMS) implement the same interface.
type logOwnerNotifier struct{}

// NewLogOwnerNotifier creates the logging notifier
func NewLogOwnerNotifier() OwnerNotifierInterface {
	return &logOwnerNotifier{}
}

func (n *logOwnerNotifier) NotifyStatementFinalized(ctx context.Context, ownerID uuid.UUID, statement *models.Statement) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slog.Info("owner notification: statement finalized",
		"owner_id", ownerID,
		"statement_id", statement.ID,
		"net_to_owner", statement.NetToOwner,
		"display_currency", statement.DisplayCurrency)

	return nil
}
