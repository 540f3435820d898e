package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSortEntries(t *testing.T) {
	jan, _ := NewDate("2024-01-01")
	feb, _ := NewDate("2024-02-01")
	mar, _ := NewDate("2024-03-01")

	t.Run("ByDate", func(t *testing.T) {
		entries := Entries{
			&Transaction{Date: mar},
			&Transaction{Date: jan},
			&Transaction{Date: feb},
		}

		SortEntries(entries)

		assert.Equal(t, "2024-01-01", EntryDate(entries[0]).String())
		assert.Equal(t, "2024-02-01", EntryDate(entries[1]).String())
		assert.Equal(t, "2024-03-01", EntryDate(entries[2]).String())
	})

	t.Run("OpenBeforeCloseBeforeOthers", func(t *testing.T) {
		entries := Entries{
			&Transaction{Date: jan},
			&Close{Date: jan, Account: "Assets:Old"},
			&Open{Date: jan, Account: "Assets:New"},
		}

		SortEntries(entries)

		assert.Equal(t, "open", entries[0].Directive())
		assert.Equal(t, "close", entries[1].Directive())
		assert.Equal(t, "transaction", entries[2].Directive())
	})

	t.Run("StableForEqualEntries", func(t *testing.T) {
		first := &Open{Date: jan, Account: "Assets:A"}
		second := &Open{Date: jan, Account: "Assets:B"}
		entries := Entries{first, second}

		SortEntries(entries)

		assert.Equal(t, first, entries[0].(*Open))
		assert.Equal(t, second, entries[1].(*Open))
	})
}

func TestEntryDate(t *testing.T) {
	assert.True(t, EntryDate(nil).IsZero())

	date, _ := NewDate("2024-01-01")
	assert.Equal(t, "2024-01-01", EntryDate(&Balance{Date: date}).String())
}
