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

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// StatementHandler handles statement-related HTTP requests
type StatementHandler struct {
	builderService   services.StatementBuilderServiceInterface
	lifecycleService services.StatementLifecycleServiceInterface
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(
	builderService services.StatementBuilderServiceInterface,
	lifecycleService services.StatementLifecycleServiceInterface,
) *StatementHandler {
	return &StatementHandler{
		builderService:   builderService,
		lifecycleService: lifecycleService,
	}
}

// GenerateStatement creates a draft statement for an owner and period
func (h *StatementHandler) GenerateStatement(c echo.Context) error {
	var req dto.GenerateStatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return SendError(c, errors.OwnerInvalidID)
	}

	periodStart, err := parsePeriodDate(req.PeriodStart)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	periodEnd, err := parsePeriodDate(req.PeriodEnd)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	statement, err := h.builderService.GenerateStatement(c.Request().Context(), services.GenerateStatementInput{
		OwnerID:            ownerID,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
		DisplayCurrency:    req.DisplayCurrency,
		CarryWalletBalance: req.CarryWalletBalance,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidPeriod):
			return SendError(c, errors.StatementInvalidRange)
		case stderrors.Is(err, services.ErrNotFound):
			return SendError(c, errors.OwnerNotFound)
		case stderrors.Is(err, services.ErrRateUnavailable):
			return SendError(c, errors.CurrencyRateUnavailable, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrUnsupportedCurrency):
			return SendError(c, errors.CurrencyUnsupported, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.ToStatementResponse(statement),
		Message: "Draft statement generated",
	})
}

// FinalizeStatement flips a draft statement to finalized and settles the
// owner wallet
func (h *StatementHandler) FinalizeStatement(c echo.Context) error {
	statementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.StatementInvalidID)
	}

	result, err := h.lifecycleService.FinalizeStatement(c.Request().Context(), statementID)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrNotFound):
			return SendError(c, errors.StatementNotFound)
		case stderrors.Is(err, services.ErrStatementNotDraft):
			return SendError(c, errors.StatementNotDraft)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.FinalizeStatementResponse{
			Statement: dto.ToStatementResponse(result.Statement),
			Wallet:    dto.ToWalletResponse(result.Wallet),
			Warnings:  result.Warnings,
		},
		Message: "Statement finalized",
	})
}

// GetStatement returns a statement with its lines
func (h *StatementHandler) GetStatement(c echo.Context) error {
	statementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.StatementInvalidID)
	}

	statement, err := h.lifecycleService.GetStatement(c.Request().Context(), statementID)
	if err != nil {
		if stderrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.StatementNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToStatementResponse(statement),
	})
}

// DeleteStatement removes a draft statement
func (h *StatementHandler) DeleteStatement(c echo.Context) error {
	statementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.StatementInvalidID)
	}

	if err := h.lifecycleService.DeleteStatement(c.Request().Context(), statementID); err != nil {
		switch {
		case stderrors.Is(err, services.ErrNotFound):
			return SendError(c, errors.StatementNotFound)
		case stderrors.Is(err, services.ErrStatementUndeletable):
			return SendError(c, errors.StatementUndeletable)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListStatements returns an owner's statements, newest period first
func (h *StatementHandler) ListStatements(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return SendError(c, errors.OwnerInvalidID)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	statements, total, err := h.lifecycleService.ListStatements(c.Request().Context(), ownerID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	resp := dto.ListStatementsResponse{
		Statements: make([]dto.StatementResponse, 0, len(statements)),
		Total:      total,
		Offset:     offset,
		Limit:      limit,
	}
	for i := range statements {
		resp.Statements = append(resp.Statements, dto.ToStatementResponse(&statements[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: resp})
}
