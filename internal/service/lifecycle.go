package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodygo/identity-server/internal/logger"
	"github.com/foodygo/identity-server/internal/model"
)

// Lifecycle moves accounts between the active, locked and soft-deleted states.
// Transitions do not depend on any session.
type Lifecycle struct {
	accounts  model.AccountStore
	customers model.CustomerStore
	logger    *logger.Logger
}

func NewLifecycle(accounts model.AccountStore, customers model.CustomerStore, logger *logger.Logger) *Lifecycle {
	return &Lifecycle{
		accounts:  accounts,
		customers: customers,
		logger:    logger,
	}
}

// Lock disables the account. Deleted is left as is. Locking a locked account is a no-op.
func (l *Lifecycle) Lock(ctx context.Context, id int64) (model.Account, error) {
	account, err := l.load(ctx, id)
	if err != nil {
		return model.Account{}, err
	}

	state := account.AccountState
	state.Enabled = false
	state.NonLocked = false

	return l.apply(ctx, account, state, "lock")
}

// Unlock re-enables a locked account. Deleted is left as is.
func (l *Lifecycle) Unlock(ctx context.Context, id int64) (model.Account, error) {
	account, err := l.load(ctx, id)
	if err != nil {
		return model.Account{}, err
	}
	if account.NonLocked {
		return model.Account{}, fmt.Errorf("account %d is not locked: %w", id, model.ErrInvalidStateTransition)
	}

	state := account.AccountState
	state.Enabled = true
	state.NonLocked = true

	return l.apply(ctx, account, state, "unlock")
}

// SoftDelete suspends the account and marks its customer profile deleted.
func (l *Lifecycle) SoftDelete(ctx context.Context, id int64) (model.Account, error) {
	account, err := l.load(ctx, id)
	if err != nil {
		return model.Account{}, err
	}

	updated, err := l.apply(ctx, account, model.StateSuspended, "soft delete")
	if err != nil {
		return model.Account{}, err
	}

	if err := l.customers.MarkDeletedByAccount(ctx, id); err != nil {
		l.logger.Error("Lifecycle service: failed to delete customer profile",
			"account_id", id,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to delete customer profile: %w", err)
	}

	return updated, nil
}

// Undelete restores the account to the active state. An account that is
// already active is rejected and left untouched.
func (l *Lifecycle) Undelete(ctx context.Context, id int64) (model.Account, error) {
	account, err := l.load(ctx, id)
	if err != nil {
		return model.Account{}, err
	}
	if account.Active() {
		l.logger.Info("Lifecycle service: undelete of active account denied", "account_id", id)
		return model.Account{}, fmt.Errorf("account %d is already active: %w", id, model.ErrInvalidStateTransition)
	}

	return l.apply(ctx, account, model.StateActive, "undelete")
}

func (l *Lifecycle) load(ctx context.Context, id int64) (model.Account, error) {
	account, err := l.accounts.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("account %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}
	return account, nil
}

func (l *Lifecycle) apply(ctx context.Context, account model.Account, state model.AccountState, op string) (model.Account, error) {
	if account.AccountState == state {
		l.logger.Debug("Lifecycle service: state unchanged", "account_id", account.ID, "op", op)
		return account, nil
	}

	updated, err := l.accounts.SetState(ctx, account.ID, state)
	if err != nil {
		l.logger.Error("Lifecycle service: failed to update state",
			"account_id", account.ID,
			"op", op,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to %s account: %w", op, err)
	}

	l.logger.Info("Lifecycle service: state updated",
		"account_id", account.ID,
		"op", op,
		"enabled", updated.Enabled,
		"non_locked", updated.NonLocked,
		"deleted", updated.Deleted)

	return updated, nil
}
