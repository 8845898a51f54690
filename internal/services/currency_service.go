package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrRateUnavailable     = errors.New("no exchange rate available for currency pair")
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
)

// rateKey identifies a directed currency pair
type rateKey struct {
	From string
	To   string
}

// recordedRate is a rate observation with the time it was captured,
// supporting pinned (historical) conversions.
type recordedRate struct {
	Rate       decimal.Decimal
	RecordedAt time.Time
}

// rateTableConverter converts currencies from an in-process rate table with
// an explicit, logged fallback to the last cached observation. It never
// falls back to an identity conversion for distinct currencies: a missing
// pair is an error, because treating it as 1.0 silently corrupts the
// financial record.
type rateTableConverter struct {
	mu      sync.RWMutex
	current map[rateKey]decimal.Decimal
	history map[rateKey][]recordedRate
	metrics MetricsRecorderInterface
}

// NewRateTableConverter creates a converter seeded with the given rates,
// keyed as "FROM:TO" (e.g. "USD:GHS").
func NewRateTableConverter(rates map[string]decimal.Decimal, metrics MetricsRecorderInterface) CurrencyConverterInterface {
	c := &rateTableConverter{
		current: make(map[rateKey]decimal.Decimal),
		history: make(map[rateKey][]recordedRate),
		metrics: metrics,
	}

	now := time.Now()
	for pair, rate := range rates {
		var from, to string
		if _, err := fmt.Sscanf(pair, "%3s:%3s", &from, &to); err != nil {
			slog.Warn("skipping malformed rate pair", "pair", pair)
			continue
		}
		c.setRate(from, to, rate, now)
	}

	return c
}

func (c *rateTableConverter) setRate(from, to string, rate decimal.Decimal, at time.Time) {
	// A zero or negative rate can never convert money, and zero would blow up
	// the inverse lookup. Treat the pair as absent instead.
	if rate.LessThanOrEqual(decimal.Zero) {
		slog.Warn("skipping non-positive exchange rate", "from", from, "to", to, "rate", rate)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := rateKey{From: from, To: to}
	c.current[key] = rate
	c.history[key] = append(c.history[key], recordedRate{Rate: rate, RecordedAt: at})
}

// Convert converts amount from one currency to another. A nil asOf uses the
// current rate; a timestamp uses the most recent rate recorded at or before
// that instant.
func (c *rateTableConverter) Convert(ctx context.Context, amount decimal.Decimal, from, to string, asOf *time.Time) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	if len(from) != 3 || len(to) != 3 {
		return decimal.Zero, fmt.Errorf("%w: %q -> %q", ErrUnsupportedCurrency, from, to)
	}

	if from == to {
		return amount, nil
	}

	rate, err := c.lookupRate(from, to, asOf)
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Mul(rate), nil
}

func (c *rateTableConverter) lookupRate(from, to string, asOf *time.Time) (decimal.Decimal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := rateKey{From: from, To: to}
	inverse := rateKey{From: to, To: from}

	if asOf != nil {
		if rate, ok := c.pinnedRate(key, *asOf); ok {
			return rate, nil
		}
		if rate, ok := c.pinnedRate(inverse, *asOf); ok {
			return decimal.NewFromInt(1).Div(rate), nil
		}
		// No observation at the pinned time: fall back to the current rate,
		// loudly, so drafts can still be produced while the gap is fixed.
		if rate, ok := c.currentRate(key, inverse); ok {
			slog.Warn("no historical rate recorded; falling back to current rate",
				"from", from, "to", to, "as_of", *asOf)
			if c.metrics != nil {
				c.metrics.IncrementCounter("currency.conversion.fallback", map[string]string{
					"from": from, "to": to,
				})
			}
			return rate, nil
		}
		return decimal.Zero, fmt.Errorf("%w: %s -> %s as of %s", ErrRateUnavailable, from, to, asOf.Format(time.RFC3339))
	}

	if rate, ok := c.currentRate(key, inverse); ok {
		return rate, nil
	}

	return decimal.Zero, fmt.Errorf("%w: %s -> %s", ErrRateUnavailable, from, to)
}

func (c *rateTableConverter) currentRate(key, inverse rateKey) (decimal.Decimal, bool) {
	if rate, ok := c.current[key]; ok {
		return rate, true
	}
	if rate, ok := c.current[inverse]; ok {
		return decimal.NewFromInt(1).Div(rate), true
	}
	return decimal.Zero, false
}

func (c *rateTableConverter) pinnedRate(key rateKey, asOf time.Time) (decimal.Decimal, bool) {
	observations := c.history[key]
	for i := len(observations) - 1; i >= 0; i-- {
		if !observations[i].RecordedAt.After(asOf) {
			return observations[i].Rate, true
		}
	}
	return decimal.Zero, false
}
