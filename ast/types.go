package ast

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Date represents a calendar date in a ledger entry.
type Date struct {
	time.Time
}

// NewDate parses a date in ISO 8601 format (YYYY-MM-DD).
func NewDate(value string) (*Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %s", value)
	}
	return &Date{t}, nil
}

// IsZero returns true if the Date is nil or represents the zero time.
// This method is nil-safe to prevent panics when libraries check if
// fields are zero-valued.
func (d *Date) IsZero() bool {
	if d == nil {
		return true
	}
	return d.Time.IsZero()
}

func (d *Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// Flag marks the state of a transaction. A cleared transaction (*) has been
// verified against a statement; a pending one (!) still needs attention.
type Flag uint8

const (
	FlagOK    Flag = iota // cleared, written as *
	FlagError             // pending or incorrect, written as !
)

func (f Flag) String() string {
	if f == FlagError {
		return "!"
	}
	return "*"
}

// Amount represents a numerical value with its associated currency or
// commodity symbol. The value is stored as an exact decimal, avoiding
// floating-point precision issues. The decimal keeps the scale of the
// input ("1.00" parses with exponent -2), though String renders without
// trailing zeros.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

func (a Amount) String() string {
	return a.Number.String() + " " + a.Currency
}

// Equal reports whether two amounts have the same currency and numerically
// equal values. "1.0 USD" and "1.00 USD" compare equal.
func (a Amount) Equal(other Amount) bool {
	return a.Currency == other.Currency && a.Number.Equal(other.Number)
}

// Price represents the per-unit conversion rate attached to a posting with
// an @ or @@ clause. Total rates (@@) are normalized to per-unit form during
// parsing, so Amount is always a per-unit value.
//
// Example:
//
//	Assets:Depot  2 VACHF @ 105 CHF
//	Assets:Depot  2 VACHF @@ 210 CHF
type Price struct {
	Amount Amount
}

// Cost represents the per-unit acquisition cost attached to a posting with a
// { } or {{ }} clause. An empty clause {} requests automatic lot selection and
// is represented by a nil Amount. Total costs ({{ }}) are normalized to
// per-unit form during parsing.
//
// Example:
//
//	Assets:Depot  2 VACHF {100 CHF}
//	Assets:Depot  2 VACHF {{200 CHF}}
//	Assets:Depot  -2 VACHF {}
type Cost struct {
	Amount *Amount
}

// IsAutomatic returns true if this is an empty cost specification {},
// deferring lot selection to a later booking pass. Distinguishes between
// nil (no cost clause) and empty cost.
func (c *Cost) IsAutomatic() bool {
	return c != nil && c.Amount == nil
}
