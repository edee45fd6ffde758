package repository

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-tracker/models"
	"expense-tracker/storage"
	"expense-tracker/storage/memory"
)

func newMemoryHandler() *Handler {
	return NewHandler(
		NewExpenseRepository(memory.NewCollection[storage.ExpenseRecord]()),
		NewIncomeRepository(memory.NewCollection[storage.IncomeRecord]()),
		NewUserRepository(memory.NewSingleton[storage.UserRecord](nil)),
	)
}

func TestHandlerExpenseLifecycle(t *testing.T) {
	ctx := context.Background()
	h := newMemoryHandler()

	expense := models.Expense{
		ID:       "e1",
		Name:     "Lunch",
		Amount:   decimal.NewFromFloat(12.50),
		Date:     civil.Date{Year: 2025, Month: 4, Day: 1},
		Category: models.CategoryFood,
	}
	require.NoError(t, h.SaveExpense(ctx, expense))

	fetched, err := h.FetchExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, "e1", fetched[0].ID)
	assert.True(t, fetched[0].Amount.Equal(expense.Amount))
	assert.Equal(t, expense.Date, fetched[0].Date)

	expense.Name = "Team lunch"
	require.NoError(t, h.UpdateExpense(ctx, expense))

	fetched, err = h.FetchExpenses(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Team lunch", fetched[0].Name)

	require.NoError(t, h.DeleteExpense(ctx, expense))

	fetched, err = h.FetchExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, fetched)
}

func TestHandlerUpdateAbsentExpense(t *testing.T) {
	ctx := context.Background()
	h := newMemoryHandler()

	err := h.UpdateExpense(ctx, models.Expense{ID: "ghost", Date: civil.Date{Year: 2025, Month: 4, Day: 1}})
	assert.ErrorIs(t, err, storage.ErrDataNotFound)
}

func TestHandlerUserLifecycle(t *testing.T) {
	ctx := context.Background()
	h := newMemoryHandler()

	user, err := h.FetchUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, h.SaveUser(ctx, models.User{ID: "u1", Email: "u@example.com"}))

	user, err = h.FetchUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)

	require.NoError(t, h.UpdateUser(ctx, models.User{ID: "u1", Email: "new@example.com"}))

	user, err = h.FetchUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)

	require.NoError(t, h.DeleteUser(ctx))

	user, err = h.FetchUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestHandlerDeleteAll(t *testing.T) {
	ctx := context.Background()
	h := newMemoryHandler()

	date := civil.Date{Year: 2025, Month: 4, Day: 1}
	require.NoError(t, h.SaveExpense(ctx, models.Expense{ID: "e1", Date: date, Category: models.CategoryFood}))
	require.NoError(t, h.SaveIncome(ctx, models.Income{ID: "i1", Date: date, Source: models.SourceSalary}))
	require.NoError(t, h.SaveUser(ctx, models.User{ID: "u1"}))

	require.NoError(t, h.DeleteAll(ctx))

	expenses, err := h.FetchExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	incomes, err := h.FetchIncomes(ctx)
	require.NoError(t, err)
	assert.Empty(t, incomes)

	user, err := h.FetchUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}
