package ledger

import (
	"fmt"

	"github.com/robinvdvleuten/beanledger/ast"
)

// EmptySumError reports an attempt to sum zero amounts; there is no
// currency to attribute the zero to.
type EmptySumError struct{}

func (e *EmptySumError) Error() string {
	return "cannot sum an empty list of amounts"
}

// MixedCurrencyError reports a sum over amounts in different currencies.
type MixedCurrencyError struct {
	First  string
	Second string
}

func (e *MixedCurrencyError) Error() string {
	return fmt.Sprintf("cannot sum amounts in different currencies: %s and %s", e.First, e.Second)
}

// UnbalancedError reports a transaction whose postings do not sum to zero.
type UnbalancedError struct {
	Transaction *ast.Transaction
	Residual    ast.Amount
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("transaction on %s is not balanced: postings sum to %s",
		ast.EntryDate(e.Transaction), e.Residual)
}
