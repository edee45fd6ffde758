package repository

import (
	"context"

	"expense-tracker/models"
	"expense-tracker/storage"
)

// IncomeRepository exposes income CRUD in domain terms over one source.
type IncomeRepository struct {
	source storage.Collection[storage.IncomeRecord]
}

func NewIncomeRepository(source storage.Collection[storage.IncomeRecord]) *IncomeRepository {
	return &IncomeRepository{source: source}
}

func (r *IncomeRepository) FetchAll(ctx context.Context) ([]models.Income, error) {
	records, err := r.source.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	incomes := make([]models.Income, 0, len(records))
	for _, record := range records {
		income, err := incomeFromRecord(record)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, nil
}

func (r *IncomeRepository) Save(ctx context.Context, income models.Income) error {
	return r.source.Create(ctx, incomeToRecord(income))
}

func (r *IncomeRepository) Update(ctx context.Context, income models.Income) error {
	return r.source.Update(ctx, incomeToRecord(income))
}

func (r *IncomeRepository) Delete(ctx context.Context, income models.Income) error {
	return r.source.Delete(ctx, incomeToRecord(income))
}

func (r *IncomeRepository) DeleteAll(ctx context.Context) error {
	return r.source.DeleteAll(ctx)
}
