package repository

import (
	"context"

	"expense-tracker/models"
)

// Handler composes the three entity repositories into one access point
// representing "a store". The composition is fixed at construction; callers
// above this facade never reach into individual repositories or sources.
type Handler struct {
	expenses *ExpenseRepository
	incomes  *IncomeRepository
	users    *UserRepository
}

func NewHandler(expenses *ExpenseRepository, incomes *IncomeRepository, users *UserRepository) *Handler {
	return &Handler{
		expenses: expenses,
		incomes:  incomes,
		users:    users,
	}
}

// ==================== EXPENSES ====================

func (h *Handler) FetchExpenses(ctx context.Context) ([]models.Expense, error) {
	return h.expenses.FetchAll(ctx)
}

func (h *Handler) SaveExpense(ctx context.Context, expense models.Expense) error {
	return h.expenses.Save(ctx, expense)
}

func (h *Handler) UpdateExpense(ctx context.Context, expense models.Expense) error {
	return h.expenses.Update(ctx, expense)
}

func (h *Handler) DeleteExpense(ctx context.Context, expense models.Expense) error {
	return h.expenses.Delete(ctx, expense)
}

func (h *Handler) DeleteAllExpenses(ctx context.Context) error {
	return h.expenses.DeleteAll(ctx)
}

// ==================== INCOMES ====================

func (h *Handler) FetchIncomes(ctx context.Context) ([]models.Income, error) {
	return h.incomes.FetchAll(ctx)
}

func (h *Handler) SaveIncome(ctx context.Context, income models.Income) error {
	return h.incomes.Save(ctx, income)
}

func (h *Handler) UpdateIncome(ctx context.Context, income models.Income) error {
	return h.incomes.Update(ctx, income)
}

func (h *Handler) DeleteIncome(ctx context.Context, income models.Income) error {
	return h.incomes.Delete(ctx, income)
}

func (h *Handler) DeleteAllIncomes(ctx context.Context) error {
	return h.incomes.DeleteAll(ctx)
}

// ==================== USER ====================

func (h *Handler) FetchUser(ctx context.Context) (*models.User, error) {
	return h.users.Fetch(ctx)
}

func (h *Handler) SaveUser(ctx context.Context, user models.User) error {
	return h.users.Save(ctx, user)
}

func (h *Handler) UpdateUser(ctx context.Context, user models.User) error {
	return h.users.Update(ctx, user)
}

func (h *Handler) DeleteUser(ctx context.Context) error {
	return h.users.Delete(ctx)
}

// ==================== BULK ====================

// DeleteAll wipes every entity family in this store.
func (h *Handler) DeleteAll(ctx context.Context) error {
	if err := h.expenses.DeleteAll(ctx); err != nil {
		return err
	}
	if err := h.incomes.DeleteAll(ctx); err != nil {
		return err
	}
	return h.users.DeleteAll(ctx)
}
