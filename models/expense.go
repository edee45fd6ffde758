package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Category classifies an expense. Raw values are the canonical strings
// written to storage.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryEntertainment Category = "Entertainment"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryEntertainment,
		CategoryTravel,
		CategoryShopping,
		CategoryHealth,
		CategoryOther,
	}
}

// ParseCategory resolves a raw storage string to a Category. Unknown or
// legacy values resolve to CategoryOther so that records written by older
// or newer clients still load.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryFood, CategoryEntertainment, CategoryTravel,
		CategoryShopping, CategoryHealth, CategoryOther:
		return Category(raw)
	default:
		return CategoryOther
	}
}

// Expense is a single spend recorded by the user.
type Expense struct {
	ID       string
	Name     string
	Amount   decimal.Decimal
	Date     civil.Date
	Category Category
	Note     string
}

func (e Expense) TransactionID() string  { return e.ID }
func (e Expense) Value() decimal.Decimal { return e.Amount }
func (e Expense) Day() civil.Date        { return e.Date }
