// Package repository maps between domain entities and storage records, each
// repository delegating to exactly one data source chosen at construction.
package repository

import (
	"context"

	"expense-tracker/models"
	"expense-tracker/storage"
)

// ExpenseRepository exposes expense CRUD in domain terms over one source.
type ExpenseRepository struct {
	source storage.Collection[storage.ExpenseRecord]
}

func NewExpenseRepository(source storage.Collection[storage.ExpenseRecord]) *ExpenseRepository {
	return &ExpenseRepository{source: source}
}

func (r *ExpenseRepository) FetchAll(ctx context.Context) ([]models.Expense, error) {
	records, err := r.source.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses := make([]models.Expense, 0, len(records))
	for _, record := range records {
		expense, err := expenseFromRecord(record)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Save(ctx context.Context, expense models.Expense) error {
	return r.source.Create(ctx, expenseToRecord(expense))
}

func (r *ExpenseRepository) Update(ctx context.Context, expense models.Expense) error {
	return r.source.Update(ctx, expenseToRecord(expense))
}

func (r *ExpenseRepository) Delete(ctx context.Context, expense models.Expense) error {
	return r.source.Delete(ctx, expenseToRecord(expense))
}

func (r *ExpenseRepository) DeleteAll(ctx context.Context) error {
	return r.source.DeleteAll(ctx)
}
