package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/beanledger/ast"
)

func TestParseHeaderStrings(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		payee, narration, err := parseHeaderStrings("")
		assert.NoError(t, err)
		assert.Equal(t, "", payee)
		assert.Equal(t, "", narration)
	})

	t.Run("NarrationOnly", func(t *testing.T) {
		payee, narration, err := parseHeaderStrings(`"Lamb tagine with wine"`)
		assert.NoError(t, err)
		assert.Equal(t, "", payee)
		assert.Equal(t, "Lamb tagine with wine", narration)
	})

	t.Run("PayeeAndNarration", func(t *testing.T) {
		payee, narration, err := parseHeaderStrings(`"Cafe Mogador" "Lamb tagine with wine"`)
		assert.NoError(t, err)
		assert.Equal(t, "Cafe Mogador", payee)
		assert.Equal(t, "Lamb tagine with wine", narration)
	})

	t.Run("EmptyStrings", func(t *testing.T) {
		payee, narration, err := parseHeaderStrings(`"Cafe Mogador" ""`)
		assert.NoError(t, err)
		assert.Equal(t, "Cafe Mogador", payee)
		assert.Equal(t, "", narration)
	})

	t.Run("BareWord", func(t *testing.T) {
		_, _, err := parseHeaderStrings(`payee "narration"`)
		assert.Error(t, err)
	})

	t.Run("Unterminated", func(t *testing.T) {
		_, _, err := parseHeaderStrings(`"no closing quote`)
		assert.Error(t, err)
	})

	t.Run("TooManyStrings", func(t *testing.T) {
		_, _, err := parseHeaderStrings(`"a" "b" "c"`)
		assert.Error(t, err)
	})
}

func TestParsePosting(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		posting, ok, err := parsePosting("  Assets:Depot:Cash   2100 CHF")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Assets:Depot:Cash", posting.Account)
		assert.Equal(t, "2100 CHF", posting.Amount.String())
		assert.Zero(t, posting.Price)
		assert.Zero(t, posting.Cost)
	})

	t.Run("WithComment", func(t *testing.T) {
		posting, ok, err := parsePosting("  Assets:Cash 5 CHF ; lunch money")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "5 CHF", posting.Amount.String())
	})

	t.Run("WithPriceAndCost", func(t *testing.T) {
		posting, ok, err := parsePosting("  Assets:Depot 2 VACHF @ 1 USD {{ 6.3CHF}}")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "2 VACHF", posting.Amount.String())
		assert.Equal(t, "1 USD", posting.Price.Amount.String())
		assert.Equal(t, "3.15 CHF", posting.Cost.Amount.String())
	})

	t.Run("BlankLineSkipped", func(t *testing.T) {
		_, ok, err := parsePosting("   ")
		assert.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = parsePosting("; just a comment")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("NoAmount", func(t *testing.T) {
		_, _, err := parsePosting("  Assets:Cash")
		assert.Error(t, err)
	})
}

func TestParseTransaction(t *testing.T) {
	date, _ := ast.NewDate("2024-10-04")

	t.Run("FullBlock", func(t *testing.T) {
		body := "; comment in transaction\n  Assets:Depot:Cash   2100 CHF\n  Assets:Foo -500 CHF\n  Income:Salary -1600 CHF"
		txn, err := parseTransaction(date, ast.FlagOK, `"Acme" "October salary"`, body)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", txn.Payee)
		assert.Equal(t, "October salary", txn.Narration)
		assert.Equal(t, 3, len(txn.Postings))
		assert.Equal(t, "Income:Salary", txn.Postings[2].Account)
	})

	t.Run("NoPostings", func(t *testing.T) {
		txn, err := parseTransaction(date, ast.FlagError, `"pending"`, "")
		assert.NoError(t, err)
		assert.Equal(t, ast.FlagError, txn.Flag)
		assert.Equal(t, 0, len(txn.Postings))
	})

	t.Run("BadPostingAbortsTransaction", func(t *testing.T) {
		body := "  Assets:Cash 5 CHF\n  Assets:Other nonsense"
		_, err := parseTransaction(date, ast.FlagOK, "", body)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Assets:Other nonsense")
	})

	t.Run("BadHeaderAbortsTransaction", func(t *testing.T) {
		_, err := parseTransaction(date, ast.FlagOK, "bare words", "")
		assert.Error(t, err)
	})
}
