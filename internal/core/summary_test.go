package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	records := []ExpenseRecord{
		NewExpenseRecord("Laptop", Business, decimal.NewFromInt(999)),
		NewExpenseRecord("Coffee", Personal, decimal.RequireFromString("4.50")),
		NewExpenseRecord("Taxi", Business, decimal.RequireFromString("20.25")),
	}

	s := Summarize(records)

	assert.True(t, s.Total.Equal(decimal.RequireFromString("1023.75")))
	require.Len(t, s.ByCategory, 2)
	assert.Equal(t, Business, s.ByCategory[0].Category)
	assert.True(t, s.ByCategory[0].Amount.Equal(decimal.RequireFromString("1019.25")))
	assert.Equal(t, 2, s.ByCategory[0].Count)
	assert.Equal(t, Personal, s.ByCategory[1].Category)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.Total.IsZero())
	assert.Empty(t, s.ByCategory)
}
