package services

import (
	"bytes"
	"context"
	"fmt"

	"rental-backoffice/internal/models"
)

// textStatementRenderer renders a finalized statement as a plain-text
// document. PDF or HTML output plugs in behind the same interface without
// touching the finalization flow.
type textStatementRenderer struct{}

// NewTextStatementRenderer creates the plain-text renderer
func NewTextStatementRenderer() StatementRendererInterface {
	return &textStatementRenderer{}
}

func (r *textStatementRenderer) Render(ctx context.Context, statement *models.Statement) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "OWNER STATEMENT %s\n", statement.ID)
	fmt.Fprintf(&buf, "Period: %s to %s\n",
		statement.PeriodStart.Format("2006-01-02"), statement.PeriodEnd.Format("2006-01-02"))
	fmt.Fprintf(&buf, "Currency: %s\n\n", statement.DisplayCurrency)

	for i := range statement.Lines {
		line := &statement.Lines[i]
		fmt.Fprintf(&buf, "%-12s %-50s %12s %s\n",
			line.Type, line.Description, line.AmountInDisplayCurrency.StringFixed(2), statement.DisplayCurrency)
	}

	fmt.Fprintf(&buf, "\nGross revenue:      %12s\n", statement.GrossRevenue.StringFixed(2))
	fmt.Fprintf(&buf, "Total expenses:     %12s\n", statement.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&buf, "Commission:         %12s\n", statement.CommissionAmount.StringFixed(2))
	fmt.Fprintf(&buf, "Net to owner:       %12s\n", statement.NetToOwner.StringFixed(2))
	fmt.Fprintf(&buf, "Opening balance:    %12s\n", statement.OpeningBalance.StringFixed(2))
	fmt.Fprintf(&buf, "Closing balance:    %12s\n", statement.ClosingBalance.StringFixed(2))

	return buf.Bytes(), nil
}
