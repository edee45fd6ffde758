package memory

import "expense-tracker/storage"

// Seed data for previews and tests.

// SampleExpenses returns a small fixture set covering several categories.
func SampleExpenses() []storage.ExpenseRecord {
	return []storage.ExpenseRecord{
		{ID: "fixture-expense-1", Name: "Groceries", Amount: 54.20, Date: "2025-04-01", Category: "Food", Note: "weekly shop"},
		{ID: "fixture-expense-2", Name: "Cinema", Amount: 18.00, Date: "2025-04-03", Category: "Entertainment", Note: ""},
		{ID: "fixture-expense-3", Name: "Train ticket", Amount: 31.75, Date: "2025-04-05", Category: "Travel", Note: "airport"},
		{ID: "fixture-expense-4", Name: "Pharmacy", Amount: 9.99, Date: "2025-04-07", Category: "Health", Note: ""},
	}
}

// SampleIncomes returns a small income fixture set.
func SampleIncomes() []storage.IncomeRecord {
	return []storage.IncomeRecord{
		{ID: "fixture-income-1", Amount: 3200.00, Date: "2025-04-01", Source: "Salary", Note: "April"},
		{ID: "fixture-income-2", Amount: 450.00, Date: "2025-04-10", Source: "Rental", Note: ""},
	}
}

// SampleUser returns a fixture account record.
func SampleUser() *storage.UserRecord {
	return &storage.UserRecord{
		ID:        "fixture-user",
		Email:     "preview@example.com",
		FirstName: "Pat",
		LastName:  "Example",
	}
}
