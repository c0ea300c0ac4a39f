package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Category Category
	Amount   decimal.Decimal
	Count    int
}

// Summary holds per-category totals in first-seen category order.
type Summary struct {
	Total      decimal.Decimal
	ByCategory []CategoryAmount
}

// Summarize aggregates records by category.
func Summarize(records []ExpenseRecord) Summary {
	s := Summary{Total: decimal.Zero}
	index := make(map[Category]int)
	for _, r := range records {
		s.Total = s.Total.Add(r.Amount)
		i, ok := index[r.Category]
		if !ok {
			i = len(s.ByCategory)
			index[r.Category] = i
			s.ByCategory = append(s.ByCategory, CategoryAmount{Category: r.Category, Amount: decimal.Zero})
		}
		s.ByCategory[i].Amount = s.ByCategory[i].Amount.Add(r.Amount)
		s.ByCategory[i].Count++
	}
	return s
}
