package database

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"expense-tracker/models"
	"expense-tracker/repository"
)

// SyncReport counts the writes a merge pass performed. A merge against
// already-synchronized stores reports zeroes.
type SyncReport struct {
	Pushed int // local-only records copied to the remote store
	Pulled int // remote records copied (or copied over) locally
	Failed int // per-record writes that failed and were skipped
}

func (r *SyncReport) add(other SyncReport) {
	r.Pushed += other.Pushed
	r.Pulled += other.Pulled
	r.Failed += other.Failed
}

// synchronize reconciles the local and remote stores through their handler
// interfaces only. Each entity family merges independently; a fetch failure
// aborts its own family, while a single record's push/pull failure is logged
// and skipped so one bad write can't strand the rest of the migration.
//
// Matching is by id. When the same id exists on both sides with different
// content, the remote copy wins: remote is the multi-device store, and
// overwriting local keeps a repeated merge a no-op.
func synchronize(ctx context.Context, local, remote *repository.Handler, logger *logrus.Logger) (SyncReport, error) {
	var (
		expenses, incomes, user SyncReport
		g                       errgroup.Group
	)

	g.Go(func() error {
		var err error
		expenses, err = mergeExpenses(ctx, local, remote, logger)
		return err
	})
	g.Go(func() error {
		var err error
		incomes, err = mergeIncomes(ctx, local, remote, logger)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = mergeUser(ctx, local, remote)
		return err
	})

	err := g.Wait()

	var report SyncReport
	report.add(expenses)
	report.add(incomes)
	report.add(user)
	return report, err
}

func mergeExpenses(ctx context.Context, local, remote *repository.Handler, logger *logrus.Logger) (SyncReport, error) {
	var report SyncReport

	localExpenses, err := local.FetchExpenses(ctx)
	if err != nil {
		return report, err
	}
	remoteExpenses, err := remote.FetchExpenses(ctx)
	if err != nil {
		return report, err
	}

	localByID := make(map[string]models.Expense, len(localExpenses))
	for _, e := range localExpenses {
		localByID[e.ID] = e
	}
	remoteByID := make(map[string]models.Expense, len(remoteExpenses))
	for _, e := range remoteExpenses {
		remoteByID[e.ID] = e
	}

	// Push local-only records the remote store doesn't have yet
	for _, e := range localExpenses {
		if _, ok := remoteByID[e.ID]; ok {
			continue
		}
		if err := remote.SaveExpense(ctx, e); err != nil {
			logger.WithError(err).WithField("id", e.ID).Warn("failed to push expense")
			report.Failed++
			continue
		}
		report.Pushed++
	}

	// Pull remote records absent locally; on conflicting content the remote
	// copy overwrites the local one
	for _, e := range remoteExpenses {
		existing, ok := localByID[e.ID]
		if ok && expenseEqual(existing, e) {
			continue
		}
		if ok {
			err = local.UpdateExpense(ctx, e)
		} else {
			err = local.SaveExpense(ctx, e)
		}
		if err != nil {
			logger.WithError(err).WithField("id", e.ID).Warn("failed to pull expense")
			report.Failed++
			continue
		}
		report.Pulled++
	}

	return report, nil
}

func mergeIncomes(ctx context.Context, local, remote *repository.Handler, logger *logrus.Logger) (SyncReport, error) {
	var report SyncReport

	localIncomes, err := local.FetchIncomes(ctx)
	if err != nil {
		return report, err
	}
	remoteIncomes, err := remote.FetchIncomes(ctx)
	if err != nil {
		return report, err
	}

	localByID := make(map[string]models.Income, len(localIncomes))
	for _, i := range localIncomes {
		localByID[i.ID] = i
	}
	remoteByID := make(map[string]models.Income, len(remoteIncomes))
	for _, i := range remoteIncomes {
		remoteByID[i.ID] = i
	}

	for _, i := range localIncomes {
		if _, ok := remoteByID[i.ID]; ok {
			continue
		}
		if err := remote.SaveIncome(ctx, i); err != nil {
			logger.WithError(err).WithField("id", i.ID).Warn("failed to push income")
			report.Failed++
			continue
		}
		report.Pushed++
	}

	for _, i := range remoteIncomes {
		existing, ok := localByID[i.ID]
		if ok && incomeEqual(existing, i) {
			continue
		}
		if ok {
			err = local.UpdateIncome(ctx, i)
		} else {
			err = local.SaveIncome(ctx, i)
		}
		if err != nil {
			logger.WithError(err).WithField("id", i.ID).Warn("failed to pull income")
			report.Failed++
			continue
		}
		report.Pulled++
	}

	return report, nil
}

func mergeUser(ctx context.Context, local, remote *repository.Handler) (SyncReport, error) {
	var report SyncReport

	localUser, err := local.FetchUser(ctx)
	if err != nil {
		return report, err
	}
	remoteUser, err := remote.FetchUser(ctx)
	if err != nil {
		return report, err
	}

	switch {
	case remoteUser == nil && localUser != nil:
		if err := remote.SaveUser(ctx, *localUser); err != nil {
			return report, err
		}
		report.Pushed++
	case remoteUser != nil && localUser == nil:
		if err := local.SaveUser(ctx, *remoteUser); err != nil {
			return report, err
		}
		report.Pulled++
	case remoteUser != nil && *remoteUser != *localUser:
		if err := local.UpdateUser(ctx, *remoteUser); err != nil {
			return report, err
		}
		report.Pulled++
	}

	return report, nil
}

// Decimal amounts compare by value, not by representation, so equality
// can't be plain struct comparison.

func expenseEqual(a, b models.Expense) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Amount.Equal(b.Amount) &&
		a.Date == b.Date &&
		a.Category == b.Category &&
		a.Note == b.Note
}

func incomeEqual(a, b models.Income) bool {
	return a.ID == b.ID &&
		a.Amount.Equal(b.Amount) &&
		a.Date == b.Date &&
		a.Source == b.Source &&
		a.Note == b.Note
}
