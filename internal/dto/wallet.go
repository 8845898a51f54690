package dto

import (
	"time"

	"rental-backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// WalletResponse is the owner wallet representation
type WalletResponse struct {
	OwnerID            string          `json:"owner_id"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
	CommissionsPayable decimal.Decimal `json:"commissions_payable"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// CreatePayoutRequest is the request body for recording a payout
type CreatePayoutRequest struct {
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Currency  string          `json:"currency" validate:"required,currency_code"`
	Method    string          `json:"method" validate:"required,payout_method"`
	Reference string          `json:"reference,omitempty" validate:"omitempty,max=100"`
}

// PayoutResponse is the recorded payout representation
type PayoutResponse struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreatePayoutResponse returns the payout together with the updated wallet
type CreatePayoutResponse struct {
	Payout PayoutResponse `json:"payout"`
	Wallet WalletResponse `json:"wallet"`
}

// ToWalletResponse converts a wallet model to its API representation
func ToWalletResponse(wallet *models.OwnerWallet) WalletResponse {
	return WalletResponse{
		OwnerID:            wallet.OwnerID.String(),
		CurrentBalance:     wallet.CurrentBalance,
		CommissionsPayable: wallet.CommissionsPayable,
		UpdatedAt:          wallet.UpdatedAt,
	}
}

// ToPayoutResponse converts a payout model to its API representation
func ToPayoutResponse(payout *models.Payout) PayoutResponse {
	return PayoutResponse{
		ID:        payout.ID.String(),
		OwnerID:   payout.OwnerID.String(),
		Amount:    payout.Amount,
		Currency:  payout.Currency,
		Method:    payout.Method,
		Reference: payout.Reference,
		CreatedAt: payout.CreatedAt,
	}
}
