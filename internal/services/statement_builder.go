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
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidPeriod = errors.New("period start must not be after period end")
)

// defaultConversionWorkers bounds the fan-out of concurrent currency
// conversions for one statement run.
const defaultConversionWorkers = 8

// StatementBuilderOptions carries the engine policy knobs. They are explicit
// configuration threaded into the builder, not per-route constants.
type StatementBuilderOptions struct {
	// BookingStatuses controls which bookings enter a statement.
	// Defaults to completed-only: cancelled or still-upcoming stays have no
	// settled money to reconcile.
	BookingStatuses []string

	// ConversionWorkers bounds concurrent currency conversions.
	ConversionWorkers int

	// DefaultDisplayCurrency is the last fallback when neither the request
	// nor the owner profile names a display currency.
	DefaultDisplayCurrency string
}

type statementBuilderService struct {
	ownerRepo     repositories.OwnerRepositoryInterface
	propertyRepo  repositories.PropertyRepositoryInterface
	bookingRepo   repositories.BookingRepositoryInterface
	expenseRepo   repositories.ExpenseRepositoryInterface
	walletRepo    repositories.WalletRepositoryInterface
	statementRepo repositories.StatementRepositoryInterface
	converter     CurrencyConverterInterface
	metrics       MetricsRecorderInterface
	options       StatementBuilderOptions
}

// NewStatementBuilderService creates the statement builder
func NewStatementBuilderService(
	ownerRepo repositories.OwnerRepositoryInterface,
	propertyRepo repositories.PropertyRepositoryInterface,
	bookingRepo repositories.BookingRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	walletRepo repositories.WalletRepositoryInterface,
	statementRepo repositories.StatementRepositoryInterface,
	converter CurrencyConverterInterface,
	metrics MetricsRecorderInterface,
	options StatementBuilderOptions,
) StatementBuilderServiceInterface {
	if len(options.BookingStatuses) == 0 {
		options.BookingStatuses = []string{models.BookingStatusCompleted}
	}
	if options.ConversionWorkers <= 0 {
		options.ConversionWorkers = defaultConversionWorkers
	}

	return &statementBuilderService{
		ownerRepo:     ownerRepo,
		propertyRepo:  propertyRepo,
		bookingRepo:   bookingRepo,
		expenseRepo:   expenseRepo,
		walletRepo:    walletRepo,
		statementRepo: statementRepo,
		converter:     converter,
		metrics:       metrics,
		options:       options,
	}
}

// GenerateStatement builds and persists one draft statement. The whole
// breakdown and every line are assembled in memory first; the single
// persistence write happens last, so a partially written statement is never
// observable and a failed run leaves no trace.
func (s *statementBuilderService) GenerateStatement(ctx context.Context, input GenerateStatementInput) (*models.Statement, error) {
	start := time.Now()

	if input.PeriodStart.After(input.PeriodEnd) {
		return nil, ErrInvalidPeriod
	}

	owner, err := s.ownerRepo.GetByID(input.OwnerID)
	if err != nil {
		if errors.Is(err, repositories.ErrOwnerNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify owner: %w", err)
	}

	// Request wins, then the owner's preference, then the engine default.
	displayCurrency := input.DisplayCurrency
	if displayCurrency == "" {
		displayCurrency = owner.PreferredCurrency
	}
	if displayCurrency == "" {
		displayCurrency = s.options.DefaultDisplayCurrency
	}

	bookings, err := s.bookingRepo.GetByOwnerAndPeriod(input.OwnerID, input.PeriodStart, input.PeriodEnd, s.options.BookingStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	expenses, err := s.expenseRepo.GetByOwnerAndPeriod(input.OwnerID, input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	rates, err := s.commissionRates(bookings)
	if err != nil {
		return nil, err
	}

	convertedBookings, convertedExpenses, err := s.convertAll(ctx, bookings, expenses, rates, displayCurrency)
	if err != nil {
		return nil, err
	}

	breakdown := Reconcile(convertedBookings, convertedExpenses).Rounded()

	openingBalance := decimal.Zero
	if input.CarryWalletBalance {
		wallet, err := s.walletRepo.GetOrCreate(input.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to read wallet for opening balance: %w", err)
		}
		openingBalance = wallet.CurrentBalance
	}

	statement := &models.Statement{
		OwnerID:           input.OwnerID,
		PeriodStart:       input.PeriodStart,
		PeriodEnd:         input.PeriodEnd,
		Status:            models.StatementStatusDraft,
		DisplayCurrency:   displayCurrency,
		GrossRevenue:      breakdown.GrossRevenue,
		CompanyRevenue:    breakdown.CompanyRevenue,
		OwnerRevenue:      breakdown.OwnerRevenue,
		TotalExpenses:     breakdown.TotalExpenses,
		CommissionAmount:  breakdown.CommissionAmount,
		CompanyCommission: breakdown.CompanyCommission,
		OwnerCommission:   breakdown.OwnerCommission,
		NetToOwner:        breakdown.NetToOwner,
		OpeningBalance:    openingBalance,
		ClosingBalance:    openingBalance.Add(breakdown.NetToOwner),
	}

	lines := buildStatementLines(bookings, expenses, convertedBookings, convertedExpenses, breakdown, displayCurrency)

	// Generation over large owners runs under the caller's deadline; discard
	// everything rather than persisting a half-built draft.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.statementRepo.CreateWithLines(statement, lines); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementCounter("statement.generated", map[string]string{"status": "failed"})
		}
		return nil, fmt.Errorf("failed to persist statement: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("statement.generated", map[string]string{"status": "success"})
		s.metrics.RecordProcessingTime("statement.generation", time.Since(start))
	}

	slog.Info("draft statement generated",
		"statement_id", statement.ID,
		"owner_id", input.OwnerID,
		"period_start", input.PeriodStart.Format(time.DateOnly),
		"period_end", input.PeriodEnd.Format(time.DateOnly),
		"display_currency", displayCurrency,
		"booking_count", len(bookings),
		"expense_count", len(expenses),
		"net_to_owner", statement.NetToOwner)

	return statement, nil
}

// commissionRates resolves each booking's property rate once per property
func (s *statementBuilderService) commissionRates(bookings []models.Booking) (map[uuid.UUID]decimal.Decimal, error) {
	rates := make(map[uuid.UUID]decimal.Decimal)

	for i := range bookings {
		propertyID := bookings[i].PropertyID
		if _, ok := rates[propertyID]; ok {
			continue
		}

		property, err := s.propertyRepo.GetByID(propertyID)
		if err != nil {
			if errors.Is(err, repositories.ErrPropertyNotFound) {
				return nil, fmt.Errorf("booking %s references unknown property %s: %w",
					bookings[i].ID, propertyID, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to fetch property: %w", err)
		}
		rates[propertyID] = property.DefaultCommissionRate
	}

	return rates, nil
}

// convertAll converts every booking and expense into the display currency.
// Conversions are independent, so they fan out concurrently; any failure
// aborts the whole run.
//
// Display amounts are rounded to cents here, before reconciliation, so the
// stored lines sum exactly to the stored header totals. Rounding after
// summing instead can drift a cent away from the itemized lines.
func (s *statementBuilderService) convertAll(
	ctx context.Context,
	bookings []models.Booking,
	expenses []models.Expense,
	rates map[uuid.UUID]decimal.Decimal,
	displayCurrency string,
) ([]ConvertedBooking, []ConvertedExpense, error) {
	convertedBookings := make([]ConvertedBooking, len(bookings))
	convertedExpenses := make([]ConvertedExpense, len(expenses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.options.ConversionWorkers)

	for i := range bookings {
		g.Go(func() error {
			booking := &bookings[i]
			gross := booking.GrossRevenue()

			display, err := s.converter.Convert(gctx, gross, booking.Currency, displayCurrency, nil)
			if err != nil {
				return fmt.Errorf("converting booking %s: %w", booking.ID, err)
			}

			convertedBookings[i] = ConvertedBooking{
				BookingID:          booking.ID,
				Description:        bookingLineDescription(booking),
				GrossAmount:        gross,
				Currency:           booking.Currency,
				GrossAmountDisplay: display.Round(2),
				PaymentReceivedBy:  booking.PaymentReceivedBy,
				CommissionRate:     rates[booking.PropertyID],
			}
			return nil
		})
	}

	for i := range expenses {
		g.Go(func() error {
			expense := &expenses[i]

			display, err := s.converter.Convert(gctx, expense.Amount, expense.Currency, displayCurrency, nil)
			if err != nil {
				return fmt.Errorf("converting expense %s: %w", expense.ID, err)
			}

			convertedExpenses[i] = ConvertedExpense{
				ExpenseID:     expense.ID,
				Description:   expense.Description,
				Amount:        expense.Amount,
				Currency:      expense.Currency,
				AmountDisplay: display.Round(2),
				PaidBy:        expense.PaidBy,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return convertedBookings, convertedExpenses, nil
}

// buildStatementLines itemizes the statement: one line per booking, one per
// expense, and exactly one synthetic commission line carrying the total.
func buildStatementLines(
	bookings []models.Booking,
	expenses []models.Expense,
	convertedBookings []ConvertedBooking,
	convertedExpenses []ConvertedExpense,
	breakdown Breakdown,
	displayCurrency string,
) []models.StatementLine {
	lines := make([]models.StatementLine, 0, len(bookings)+len(expenses)+1)

	for i := range convertedBookings {
		cb := &convertedBookings[i]
		refID := bookings[i].ID
		lines = append(lines, models.StatementLine{
			Type:                    models.StatementLineTypeBooking,
			ReferenceID:             &refID,
			Description:             cb.Description,
			Amount:                  cb.GrossAmount.Round(2),
			Currency:                cb.Currency,
			AmountInDisplayCurrency: cb.GrossAmountDisplay.Round(2),
		})
	}

	for i := range convertedExpenses {
		ce := &convertedExpenses[i]
		refID := expenses[i].ID
		lines = append(lines, models.StatementLine{
			Type:                    models.StatementLineTypeExpense,
			ReferenceID:             &refID,
			Description:             ce.Description,
			Amount:                  ce.Amount.Round(2),
			Currency:                ce.Currency,
			AmountInDisplayCurrency: ce.AmountDisplay.Round(2),
		})
	}

	lines = append(lines, models.StatementLine{
		Type:                    models.StatementLineTypeCommission,
		Description:             models.CommissionLineDescription,
		Amount:                  breakdown.CommissionAmount,
		Currency:                displayCurrency,
		AmountInDisplayCurrency: breakdown.CommissionAmount,
	})

	return lines
}

func bookingLineDescription(booking *models.Booking) string {
	if booking.GuestName != "" {
		return fmt.Sprintf("Booking %s, check-in %s", booking.GuestName, booking.CheckInDate.Format(time.DateOnly))
	}
	return fmt.Sprintf("Booking check-in %s", booking.CheckInDate.Format(time.DateOnly))
}
