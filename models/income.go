package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Source classifies where an income came from.
type Source string

const (
	SourceSalary     Source = "Salary"
	SourceRental     Source = "Rental"
	SourceBusiness   Source = "Business"
	SourceInvestment Source = "Investment"
	SourceOther      Source = "Other"
)

// Sources lists every known income source in display order.
func Sources() []Source {
	return []Source{
		SourceSalary,
		SourceRental,
		SourceBusiness,
		SourceInvestment,
		SourceOther,
	}
}

// ParseSource resolves a raw storage string to a Source, falling back to
// SourceOther for values this client doesn't recognize.
func ParseSource(raw string) Source {
	switch Source(raw) {
	case SourceSalary, SourceRental, SourceBusiness, SourceInvestment, SourceOther:
		return Source(raw)
	default:
		return SourceOther
	}
}

// Income is a single earning recorded by the user.
type Income struct {
	ID     string
	Amount decimal.Decimal
	Date   civil.Date
	Source Source
	Note   string
}

func (i Income) TransactionID() string  { return i.ID }
func (i Income) Value() decimal.Decimal { return i.Amount }
func (i Income) Day() civil.Date        { return i.Date }
