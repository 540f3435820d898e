package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/beanledger/formatter"
	"github.com/robinvdvleuten/beanledger/ledger"
	"github.com/robinvdvleuten/beanledger/loader"
	"github.com/robinvdvleuten/beanledger/parser"
)

func TestFileOrStdin(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "main.beancount")
		assert.NoError(t, os.WriteFile(path, []byte("2024-01-01 open Assets:Cash\n"), 0o600))

		f := FileOrStdin{Filename: path}
		assert.False(t, f.IsStdin())
		assert.NoError(t, f.EnsureContents())
		assert.True(t, filepath.IsAbs(f.GetAbsoluteFilename()))

		entries, err := f.LoadEntries(context.Background(), loader.New())
		assert.NoError(t, err)
		assert.Equal(t, 1, len(entries.Opens))
	})

	t.Run("Stdin", func(t *testing.T) {
		f := FileOrStdin{Filename: "<stdin>", Contents: []byte("2024-01-01 open Assets:Cash\n")}
		assert.True(t, f.IsStdin())
		assert.Equal(t, "<stdin>", f.GetAbsoluteFilename())

		entries, err := f.LoadEntries(context.Background(), loader.New())
		assert.NoError(t, err)
		assert.Equal(t, 1, len(entries.Opens))
	})
}

func TestCheckPipeline(t *testing.T) {
	source := `2021-01-01 open Assets:Checking
2021-01-01 open Expenses:Food

2021-01-02 * "Test transaction"
  Assets:Checking  -100.00 USD
  Expenses:Food  100.00 USD
`
	entries, err := parser.ParseString(source, parser.WithRecordedErrors())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(entries.Errors))

	for _, txn := range entries.Transactions {
		assert.NoError(t, ledger.CheckBalanced(txn))
	}
}

func TestFormatPipeline(t *testing.T) {
	source := `2021-01-02 * "Test"
  Assets:Checking  -50.00 USD
  Expenses:Food  50.00 USD

2021-01-01 open Assets:Checking
`
	entries, err := parser.ParseString(source)
	assert.NoError(t, err)

	var buf strings.Builder
	f := formatter.New(formatter.WithCurrencyColumn(60))
	assert.NoError(t, f.Format(&buf, entries.All()))

	output := buf.String()
	// Entries come out date-sorted with amounts aligned.
	assert.True(t, strings.Index(output, "open") < strings.Index(output, "Test"))
	assert.Contains(t, output, "-50 USD")
}
