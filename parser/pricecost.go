package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/beanledger/ast"
)

// parsePriceAndCost recognizes the optional clauses that may follow a
// posting's amount: a price (@ per-unit, @@ total) optionally followed by a
// cost ({ } per-unit, {{ }} total). The clauses are recognized in that
// fixed order; either may be absent. Total forms are divided by the
// posting's quantity magnitude so that returned values are always
// per-unit. rest is everything on the posting line after the amount.
func parsePriceAndCost(rest string, quantity decimal.Decimal) (*ast.Price, *ast.Cost, error) {
	s := strings.TrimSpace(rest)
	if s == "" {
		return nil, nil, nil
	}

	var price *ast.Price
	if strings.HasPrefix(s, "@") {
		var err error
		price, s, err = parsePrice(s, quantity)
		if err != nil {
			return nil, nil, err
		}
	}

	var cost *ast.Cost
	if strings.HasPrefix(s, "{") {
		var err error
		cost, s, err = parseCost(s, quantity)
		if err != nil {
			return nil, nil, err
		}
	}

	// Duplicate clauses and out-of-order "{...} @ ..." end up here.
	if s != "" {
		return nil, nil, fmt.Errorf("unexpected input after price or cost: %q", s)
	}
	return price, cost, nil
}

func parsePrice(s string, quantity decimal.Decimal) (*ast.Price, string, error) {
	total := false
	if strings.HasPrefix(s, "@@") {
		total = true
		s = s[2:]
	} else {
		s = s[1:]
	}

	// The price amount runs until the cost clause, if any.
	text, rest := s, ""
	if i := strings.IndexByte(s, '{'); i >= 0 {
		text, rest = s[:i], s[i:]
	}

	amount, err := ParseAmount(text)
	if err != nil {
		return nil, "", fmt.Errorf("invalid price: %w", err)
	}
	if total {
		amount.Number, err = perUnit(amount.Number, quantity)
		if err != nil {
			return nil, "", fmt.Errorf("invalid total price: %w", err)
		}
	}

	return &ast.Price{Amount: *amount}, strings.TrimSpace(rest), nil
}

func parseCost(s string, quantity decimal.Decimal) (*ast.Cost, string, error) {
	opening, closing := "{", "}"
	total := false
	if strings.HasPrefix(s, "{{") {
		opening, closing = "{{", "}}"
		total = true
	}

	end := strings.Index(s[len(opening):], closing)
	if end < 0 {
		return nil, "", fmt.Errorf("missing %s in cost %q", closing, s)
	}
	inner := strings.TrimSpace(s[len(opening) : len(opening)+end])
	rest := strings.TrimSpace(s[len(opening)+end+len(closing):])

	// An empty clause defers lot selection to booking.
	if inner == "" {
		return &ast.Cost{}, rest, nil
	}

	amount, err := ParseAmount(inner)
	if err != nil {
		return nil, "", fmt.Errorf("invalid cost: %w", err)
	}
	if total {
		amount.Number, err = perUnit(amount.Number, quantity)
		if err != nil {
			return nil, "", fmt.Errorf("invalid total cost: %w", err)
		}
	}

	return &ast.Cost{Amount: amount}, rest, nil
}

// perUnit converts a total value to a per-unit one. The quantity's sign is
// ignored so that reductions keep a positive cost basis.
func perUnit(value, quantity decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("cannot divide total by zero quantity")
	}
	return value.Div(quantity.Abs()), nil
}
