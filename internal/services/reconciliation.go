package services

import (
	"log/slog"

	"rental-backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConvertedBooking is a booking already converted into the statement's
// display currency, carrying only what reconciliation needs.
type ConvertedBooking struct {
	BookingID          uuid.UUID
	Description        string
	GrossAmount        decimal.Decimal
	Currency           string
	GrossAmountDisplay decimal.Decimal
	PaymentReceivedBy  string
	CommissionRate     decimal.Decimal
}

// ConvertedExpense is an expense already converted into the display currency.
type ConvertedExpense struct {
	ExpenseID     uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Currency      string
	AmountDisplay decimal.Decimal
	PaidBy        string
}

// Breakdown is the full reconciliation result. Every intermediate total is
// kept so callers can persist a complete audit trail, not just the net
// figure. Amounts are full precision; call Rounded before storing.
type Breakdown struct {
	GrossRevenue      decimal.Decimal
	CompanyRevenue    decimal.Decimal
	OwnerRevenue      decimal.Decimal
	CommissionAmount  decimal.Decimal
	CompanyCommission decimal.Decimal
	OwnerCommission   decimal.Decimal
	TotalExpenses     decimal.Decimal
	CompanyPaidTotal  decimal.Decimal
	OwnerPaidTotal    decimal.Decimal
	NetFromCompany    decimal.Decimal
	NetToOwner        decimal.Decimal
}

// Reconcile computes the financial breakdown for one owner period. It is
// pure and total: no I/O, no mutation of its inputs, and no error for any
// input in its documented domain. Zero bookings and zero expenses produce an
// all-zero breakdown.
//
// Bookings are partitioned by who received the guest's payment, expenses by
// who paid them; vendor-paid expenses are excluded entirely. Net settlement
// follows a single formula in both directions:
//
//	netFromCompany = companyRevenue - companyCommission - companyPaidExpenses
//	netToOwner     = netFromCompany - ownerCommission + ownerPaidExpenses
//
// For company-flow bookings the company holds guest funds and remits revenue
// minus its commission minus expenses it covered. For owner-flow bookings the
// owner already holds the funds and only owes commission back. Expenses the
// owner paid personally are reimbursed by adding them back.
func Reconcile(bookings []ConvertedBooking, expenses []ConvertedExpense) Breakdown {
	var b Breakdown
	b.GrossRevenue = decimal.Zero
	b.CompanyRevenue = decimal.Zero
	b.OwnerRevenue = decimal.Zero
	b.CommissionAmount = decimal.Zero
	b.CompanyCommission = decimal.Zero
	b.OwnerCommission = decimal.Zero
	b.TotalExpenses = decimal.Zero
	b.CompanyPaidTotal = decimal.Zero
	b.OwnerPaidTotal = decimal.Zero

	for i := range bookings {
		booking := &bookings[i]

		if booking.GrossAmountDisplay.LessThanOrEqual(decimal.Zero) {
			slog.Warn("booking with non-positive gross amount included in reconciliation",
				"booking_id", booking.BookingID,
				"gross_amount", booking.GrossAmountDisplay)
		}

		commission := booking.GrossAmountDisplay.Mul(booking.CommissionRate)

		switch booking.PaymentReceivedBy {
		case models.PaymentReceivedByCompany:
			b.CompanyRevenue = b.CompanyRevenue.Add(booking.GrossAmountDisplay)
			b.CompanyCommission = b.CompanyCommission.Add(commission)
		case models.PaymentReceivedByOwner:
			b.OwnerRevenue = b.OwnerRevenue.Add(booking.GrossAmountDisplay)
			b.OwnerCommission = b.OwnerCommission.Add(commission)
		}
	}

	for i := range expenses {
		expense := &expenses[i]

		switch expense.PaidBy {
		case models.ExpensePaidByCompany:
			b.CompanyPaidTotal = b.CompanyPaidTotal.Add(expense.AmountDisplay)
		case models.ExpensePaidByOwner:
			b.OwnerPaidTotal = b.OwnerPaidTotal.Add(expense.AmountDisplay)
		}
		// Vendor-paid expenses never affect the owner balance.
	}

	b.GrossRevenue = b.CompanyRevenue.Add(b.OwnerRevenue)
	b.CommissionAmount = b.CompanyCommission.Add(b.OwnerCommission)
	b.TotalExpenses = b.CompanyPaidTotal.Add(b.OwnerPaidTotal)

	b.NetFromCompany = b.CompanyRevenue.Sub(b.CompanyCommission).Sub(b.CompanyPaidTotal)
	b.NetToOwner = b.NetFromCompany.Sub(b.OwnerCommission).Add(b.OwnerPaidTotal)

	return b
}

// Rounded returns a copy with every total rounded to 2 decimal places.
// Rounding happens once, here, at the storage/display boundary; the fold in
// Reconcile always sums full-precision figures.
func (b Breakdown) Rounded() Breakdown {
	round := func(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

	return Breakdown{
		GrossRevenue:      round(b.GrossRevenue),
		CompanyRevenue:    round(b.CompanyRevenue),
		OwnerRevenue:      round(b.OwnerRevenue),
		CommissionAmount:  round(b.CommissionAmount),
		CompanyCommission: round(b.CompanyCommission),
		OwnerCommission:   round(b.OwnerCommission),
		TotalExpenses:     round(b.TotalExpenses),
		CompanyPaidTotal:  round(b.CompanyPaidTotal),
		OwnerPaidTotal:    round(b.OwnerPaidTotal),
		NetFromCompany:    round(b.NetFromCompany),
		NetToOwner:        round(b.NetToOwner),
	}
}
