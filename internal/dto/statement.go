package dto

import (
	"time"

	"rental-backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// GenerateStatementRequest is the request body for statement generation
type GenerateStatementRequest struct {
	OwnerID            string `json:"owner_id" validate:"required,uuid"`
	PeriodStart        string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd          string `json:"period_end" validate:"required,datetime=2006-01-02"`
	DisplayCurrency    string `json:"display_currency,omitempty" validate:"omitempty,currency_code"`
	CarryWalletBalance bool   `json:"carry_wallet_balance,omitempty"`
}

// StatementLineResponse is one itemized line of a statement
type StatementLineResponse struct {
	ID                      string          `json:"id"`
	Type                    string          `json:"type"`
	ReferenceID             string          `json:"reference_id,omitempty"`
	Description             string          `json:"description"`
	Amount                  decimal.Decimal `json:"amount"`
	Currency                string          `json:"currency"`
	AmountInDisplayCurrency decimal.Decimal `json:"amount_in_display_currency"`
}

// StatementResponse is the full statement representation
type StatementResponse struct {
	ID                string                  `json:"id"`
	OwnerID           string                  `json:"owner_id"`
	PeriodStart       string                  `json:"period_start"`
	PeriodEnd         string                  `json:"period_end"`
	Status            string                  `json:"status"`
	DisplayCurrency   string                  `json:"display_currency"`
	GrossRevenue      decimal.Decimal         `json:"gross_revenue"`
	CompanyRevenue    decimal.Decimal         `json:"company_revenue"`
	OwnerRevenue      decimal.Decimal         `json:"owner_revenue"`
	TotalExpenses     decimal.Decimal         `json:"total_expenses"`
	CommissionAmount  decimal.Decimal         `json:"commission_amount"`
	CompanyCommission decimal.Decimal         `json:"company_commission"`
	OwnerCommission   decimal.Decimal         `json:"owner_commission"`
	NetToOwner        decimal.Decimal         `json:"net_to_owner"`
	OpeningBalance    decimal.Decimal         `json:"opening_balance"`
	ClosingBalance    decimal.Decimal         `json:"closing_balance"`
	FinalizedAt       *time.Time              `json:"finalized_at,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	Lines             []StatementLineResponse `json:"lines,omitempty"`
}

// FinalizeStatementResponse is returned from the finalize operation
type FinalizeStatementResponse struct {
	Statement StatementResponse `json:"statement"`
	Wallet    WalletResponse    `json:"wallet"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// ListStatementsResponse is the paginated statement list
type ListStatementsResponse struct {
	Statements []StatementResponse `json:"statements"`
	Total      int64               `json:"total"`
	Offset     int                 `json:"offset"`
	Limit      int                 `json:"limit"`
}

// ToStatementResponse converts a statement model to its API representation
func ToStatementResponse(statement *models.Statement) StatementResponse {
	resp := StatementResponse{
		ID:                statement.ID.String(),
		OwnerID:           statement.OwnerID.String(),
		PeriodStart:       statement.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         statement.PeriodEnd.Format("2006-01-02"),
		Status:            statement.Status,
		DisplayCurrency:   statement.DisplayCurrency,
		GrossRevenue:      statement.GrossRevenue,
		CompanyRevenue:    statement.CompanyRevenue,
		OwnerRevenue:      statement.OwnerRevenue,
		TotalExpenses:     statement.TotalExpenses,
		CommissionAmount:  statement.CommissionAmount,
		CompanyCommission: statement.CompanyCommission,
		OwnerCommission:   statement.OwnerCommission,
		NetToOwner:        statement.NetToOwner,
		OpeningBalance:    statement.OpeningBalance,
		ClosingBalance:    statement.ClosingBalance,
		FinalizedAt:       statement.FinalizedAt,
		CreatedAt:         statement.CreatedAt,
	}

	for i := range statement.Lines {
		line := &statement.Lines[i]
		lineResp := StatementLineResponse{
			ID:                      line.ID.String(),
			Type:                    line.Type,
			Description:             line.Description,
			Amount:                  line.Amount,
			Currency:                line.Currency,
			AmountInDisplayCurrency: line.AmountInDisplayCurrency,
		}
		if line.ReferenceID != nil {
			lineResp.ReferenceID = line.ReferenceID.String()
		}
		resp.Lines = append(resp.Lines, lineResp)
	}

	return resp
}
