package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestDate_String(t *testing.T) {
	t.Run("ValidDate", func(t *testing.T) {
		date, err := NewDate("2024-12-17")
		assert.NoError(t, err)
		assert.Equal(t, "2024-12-17", date.String())
	})

	t.Run("NilDate", func(t *testing.T) {
		var date *Date
		assert.Equal(t, "", date.String())
	})

	t.Run("ZeroDate", func(t *testing.T) {
		date := &Date{}
		assert.Equal(t, "", date.String())
	})

	t.Run("InvalidDate", func(t *testing.T) {
		_, err := NewDate("2024-13-01")
		assert.Error(t, err)

		_, err = NewDate("not-a-date")
		assert.Error(t, err)

		_, err = NewDate("2024-1-01")
		assert.Error(t, err)
	})

	t.Run("LeapYearDate", func(t *testing.T) {
		date, err := NewDate("2024-02-29")
		assert.NoError(t, err)
		assert.Equal(t, "2024-02-29", date.String())
	})
}

func TestFlag_String(t *testing.T) {
	assert.Equal(t, "*", FlagOK.String())
	assert.Equal(t, "!", FlagError.String())
}

func TestAmount_String(t *testing.T) {
	amount := Amount{Number: decimal.RequireFromString("100.55"), Currency: "USD"}
	assert.Equal(t, "100.55 USD", amount.String())

	amount = Amount{Number: decimal.RequireFromString("-0.43"), Currency: "USD"}
	assert.Equal(t, "-0.43 USD", amount.String())
}

func TestAmount_Equal(t *testing.T) {
	a := Amount{Number: decimal.RequireFromString("1.0"), Currency: "USD"}
	b := Amount{Number: decimal.RequireFromString("1.00"), Currency: "USD"}
	c := Amount{Number: decimal.RequireFromString("1.0"), Currency: "CHF"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestCost_IsAutomatic(t *testing.T) {
	t.Run("NilCost", func(t *testing.T) {
		var cost *Cost
		assert.False(t, cost.IsAutomatic())
	})

	t.Run("EmptyCost", func(t *testing.T) {
		cost := &Cost{}
		assert.True(t, cost.IsAutomatic())
	})

	t.Run("KnownCost", func(t *testing.T) {
		cost := &Cost{Amount: &Amount{Number: decimal.RequireFromString("100"), Currency: "CHF"}}
		assert.False(t, cost.IsAutomatic())
	})
}
