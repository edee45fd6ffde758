package models

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Transaction is the shape shared by Expense and Income. Dashboard
// aggregation works against this view instead of a common base type.
type Transaction interface {
	TransactionID() string
	Value() decimal.Decimal
	Day() civil.Date
}

// SortByDate orders transactions newest first, in place. Ties keep their
// relative order.
func SortByDate[T Transaction](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[j].Day().Before(items[i].Day())
	})
}

// FilterByMonth returns the transactions falling in the given month.
func FilterByMonth[T Transaction](items []T, year int, month time.Month) []T {
	filtered := make([]T, 0)
	for _, item := range items {
		d := item.Day()
		if d.Year == year && d.Month == month {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Total sums the amounts of all transactions.
func Total[T Transaction](items []T) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value())
	}
	return total
}
