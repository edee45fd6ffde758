package repository

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"expense-tracker/models"
	"expense-tracker/storage"
)

// Domain <-> storage conversion lives here and nowhere else. Changing how a
// field is persisted means changing this file only.
//
// Reads resolve unknown category/source strings to Other; writes emit the
// current canonical raw value. The storage layer itself never rewrites a raw
// string, so the normalization happens exactly once, on promotion.

func expenseToRecord(e models.Expense) storage.ExpenseRecord {
	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	return storage.ExpenseRecord{
		ID:       id,
		Name:     e.Name,
		Amount:   e.Amount.InexactFloat64(),
		Date:     e.Date.String(),
		Category: string(e.Category),
		Note:     e.Note,
	}
}

func expenseFromRecord(r storage.ExpenseRecord) (models.Expense, error) {
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return models.Expense{}, fmt.Errorf("expense %q has malformed date %q: %w", r.ID, r.Date, storage.ErrInvalidData)
	}
	return models.Expense{
		ID:       r.ID,
		Name:     r.Name,
		Amount:   decimal.NewFromFloat(r.Amount),
		Date:     date,
		Category: models.ParseCategory(r.Category),
		Note:     r.Note,
	}, nil
}

func incomeToRecord(i models.Income) storage.IncomeRecord {
	id := i.ID
	if id == "" {
		id = uuid.NewString()
	}
	return storage.IncomeRecord{
		ID:     id,
		Amount: i.Amount.InexactFloat64(),
		Date:   i.Date.String(),
		Source: string(i.Source),
		Note:   i.Note,
	}
}

func incomeFromRecord(r storage.IncomeRecord) (models.Income, error) {
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return models.Income{}, fmt.Errorf("income %q has malformed date %q: %w", r.ID, r.Date, storage.ErrInvalidData)
	}
	return models.Income{
		ID:     r.ID,
		Amount: decimal.NewFromFloat(r.Amount),
		Date:   date,
		Source: models.ParseSource(r.Source),
		Note:   r.Note,
	}, nil
}

func userToRecord(u models.User) storage.UserRecord {
	id := u.ID
	if id == "" {
		id = uuid.NewString()
	}
	return storage.UserRecord{
		ID:        id,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func userFromRecord(r storage.UserRecord) models.User {
	return models.User{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}
