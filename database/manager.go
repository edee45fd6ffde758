// Package database owns the active stores. The Manager routes every call to
// the local handler while signed out and to the remote handler while an
// account is linked, and reconciles the two stores on sign-in.
package database

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"expense-tracker/models"
	"expense-tracker/repository"
)

// Manager is the single access point above the repository handlers. The
// local handler is always present; the remote handler only while linked.
//
// Mode transitions (SignIn/SignOut) are a critical section: a second
// transition waits for an in-flight merge to finish.
type Manager struct {
	mu     sync.RWMutex
	local  *repository.Handler
	remote *repository.Handler
	logger *logrus.Logger
}

func NewManager(local *repository.Handler, logger *logrus.Logger) *Manager {
	return &Manager{
		local:  local,
		logger: logger,
	}
}

// IsLinked reports whether a remote store is currently attached.
func (m *Manager) IsLinked() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.remote != nil
}

// SignIn attaches the remote store for a signed-in account and reconciles
// it with the local store. The remote handler stays attached even when the
// merge reports an error; the caller can retry the merge. The returned
// report counts the writes the merge performed.
func (m *Manager) SignIn(ctx context.Context, remote *repository.Handler) (SyncReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.remote = remote
	report, err := synchronize(ctx, m.local, m.remote, m.logger)
	if err != nil {
		m.logger.WithError(err).Error("sign-in merge finished with errors")
		return report, err
	}

	m.logger.WithFields(logrus.Fields{
		"pushed": report.Pushed,
		"pulled": report.Pulled,
		"failed": report.Failed,
	}).Info("sign-in merge complete")
	return report, nil
}

// SignOut detaches the remote store. With purge set, the local cache of the
// departing account's data is wiped so the next local-only session doesn't
// see another account's records.
func (m *Manager) SignOut(ctx context.Context, purge bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.remote = nil
	if !purge {
		return nil
	}
	return m.local.DeleteAll(ctx)
}

// handlers returns the write target and the local handler under the read
// lock. Writes go to the remote store while linked; reads prefer remote and
// fall back to the local copy when the remote read fails.
func (m *Manager) handlers() (active, local *repository.Handler) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.remote != nil {
		return m.remote, m.local
	}
	return m.local, m.local
}

// ==================== EXPENSES ====================

func (m *Manager) FetchExpenses(ctx context.Context) ([]models.Expense, error) {
	active, local := m.handlers()
	expenses, err := active.FetchExpenses(ctx)
	if err != nil && active != local {
		m.logger.WithError(err).Warn("remote expense fetch failed, falling back to local")
		return local.FetchExpenses(ctx)
	}
	return expenses, err
}

func (m *Manager) SaveExpense(ctx context.Context, expense models.Expense) error {
	active, _ := m.handlers()
	return active.SaveExpense(ctx, expense)
}

func (m *Manager) UpdateExpense(ctx context.Context, expense models.Expense) error {
	active, _ := m.handlers()
	return active.UpdateExpense(ctx, expense)
}

func (m *Manager) DeleteExpense(ctx context.Context, expense models.Expense) error {
	active, _ := m.handlers()
	return active.DeleteExpense(ctx, expense)
}

func (m *Manager) DeleteAllExpenses(ctx context.Context) error {
	active, _ := m.handlers()
	return active.DeleteAllExpenses(ctx)
}

// ==================== INCOMES ====================

func (m *Manager) FetchIncomes(ctx context.Context) ([]models.Income, error) {
	active, local := m.handlers()
	incomes, err := active.FetchIncomes(ctx)
	if err != nil && active != local {
		m.logger.WithError(err).Warn("remote income fetch failed, falling back to local")
		return local.FetchIncomes(ctx)
	}
	return incomes, err
}

func (m *Manager) SaveIncome(ctx context.Context, income models.Income) error {
	active, _ := m.handlers()
	return active.SaveIncome(ctx, income)
}

func (m *Manager) UpdateIncome(ctx context.Context, income models.Income) error {
	active, _ := m.handlers()
	return active.UpdateIncome(ctx, income)
}

func (m *Manager) DeleteIncome(ctx context.Context, income models.Income) error {
	active, _ := m.handlers()
	return active.DeleteIncome(ctx, income)
}

func (m *Manager) DeleteAllIncomes(ctx context.Context) error {
	active, _ := m.handlers()
	return active.DeleteAllIncomes(ctx)
}

// ==================== USER ====================

func (m *Manager) FetchUser(ctx context.Context) (*models.User, error) {
	active, local := m.handlers()
	user, err := active.FetchUser(ctx)
	if err != nil && active != local {
		m.logger.WithError(err).Warn("remote user fetch failed, falling back to local")
		return local.FetchUser(ctx)
	}
	return user, err
}

func (m *Manager) SaveUser(ctx context.Context, user models.User) error {
	active, _ := m.handlers()
	return active.SaveUser(ctx, user)
}

func (m *Manager) UpdateUser(ctx context.Context, user models.User) error {
	active, _ := m.handlers()
	return active.UpdateUser(ctx, user)
}

func (m *Manager) DeleteUser(ctx context.Context) error {
	active, _ := m.handlers()
	return active.DeleteUser(ctx)
}

// DeleteAll wipes the active store.
func (m *Manager) DeleteAll(ctx context.Context) error {
	active, _ := m.handlers()
	return active.DeleteAll(ctx)
}
