package handlers

import (
	stderrors "errors"
	"net/http"

	"rental-backoffice/internal/dto"
	"rental-backoffice/internal/errors"
	"rental-backoffice/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WalletHandler handles wallet and payout HTTP requests
type WalletHandler struct {
	walletService services.WalletServiceInterface
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletService services.WalletServiceInterface) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// GetWallet returns the owner's wallet balances
func (h *WalletHandler) GetWallet(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return SendError(c, errors.OwnerInvalidID)
	}

	wallet, err := h.walletService.GetWallet(c.Request().Context(), ownerID)
	if err != nil {
		if stderrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.OwnerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToWalletResponse(wallet),
	})
}

// CreatePayout records a payout to the owner and decrements the wallet
func (h *WalletHandler) CreatePayout(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return SendError(c, errors.OwnerInvalidID)
	}

	var req dto.CreatePayoutRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	payout, wallet, err := h.walletService.CreatePayout(
		c.Request().Context(), ownerID, req.Amount, req.Currency, req.Method, req.Reference)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrNotFound):
			return SendError(c, errors.OwnerNotFound)
		case stderrors.Is(err, services.ErrInvalidPayoutAmount):
			return SendError(c, errors.PayoutInvalidAmount)
		case stderrors.Is(err, services.ErrInvalidPayoutMethod):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid payout method"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.CreatePayoutResponse{
			Payout: dto.ToPayoutResponse(payout),
			Wallet: dto.ToWalletResponse(wallet),
		},
		Message: "Payout recorded",
	})
}
