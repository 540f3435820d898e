// Package ast declares the types used to represent parsed ledger entries.
//
// These types represent the structure of directives and transactions that make
// up a ledger file. Entries are created by parsing a ledger file using the
// parser package, or constructed programmatically for generating output.
package ast

import (
	"golang.org/x/exp/slices"
)

// Entry is implemented by every entry kind that can appear in a ledger file.
type Entry interface {
	// date returns the entry's date for ordering. It is unexported so that
	// external packages use EntryDate, which is nil-safe.
	date() *Date

	// Directive returns the entry's directive keyword, e.g. "open".
	Directive() string
}

// EntryDate returns the date of an entry. Nil-safe.
func EntryDate(e Entry) *Date {
	if e == nil {
		return nil
	}
	return e.date()
}

// Entries is a slice of Entry that implements sort.Interface.
type Entries []Entry

func (e Entries) Len() int           { return len(e) }
func (e Entries) Swap(i, j int)      { e[i], e[j] = e[j], e[i] }
func (e Entries) Less(i, j int) bool { return compareEntries(e[i], e[j]) < 0 }

// SortEntries sorts entries by date, then by type priority. The sort is
// stable, so entries that compare equal keep their input order.
func SortEntries(entries Entries) {
	slices.SortStableFunc(entries, compareEntries)
}

// compareEntries compares two entries by their date, then by type priority.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
//
// For same-date entries, the processing order is:
//  1. Open (accounts must be opened before use)
//  2. Close (process closes before transactions that might use closed accounts)
//  3. All other entries (transactions, balance, commodity, price)
func compareEntries(a, b Entry) int {
	if a.date().Before(b.date().Time) {
		return -1
	} else if a.date().After(b.date().Time) {
		return 1
	}

	aPriority := entryTypePriority(a)
	bPriority := entryTypePriority(b)
	if aPriority < bPriority {
		return -1
	} else if aPriority > bPriority {
		return 1
	}

	return 0
}

func entryTypePriority(e Entry) int {
	switch e.(type) {
	case *Open:
		return 0
	case *Close:
		return 1
	default:
		return 2
	}
}
