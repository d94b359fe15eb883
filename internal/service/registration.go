package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodygo/identity-server/internal/logger"
	"github.com/foodygo/identity-server/internal/model"
)

// Registration creates accounts, either self-service or on behalf of an administrator.
type Registration struct {
	accounts model.AccountStore
	roles    model.RoleDirectory
	hasher   model.PasswordHasher
	logger   *logger.Logger
}

func NewRegistration(
	accounts model.AccountStore,
	roles model.RoleDirectory,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Registration {
	return &Registration{
		accounts: accounts,
		roles:    roles,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register creates an active USER account. The email must not belong to any
// existing account, soft-deleted ones included.
func (r *Registration) Register(ctx context.Context, email, password string) (model.Account, error) {
	r.logger.Debug("Registration service: registering account", "email", email)

	userRole, err := r.roles.ByName(model.RoleUser)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to resolve default role: %w", err)
	}

	return r.create(ctx, email, password, userRole)
}

// CreateWithRole creates an active account with the role identified by roleID.
func (r *Registration) CreateWithRole(ctx context.Context, email, password string, roleID model.RoleID) (model.Account, error) {
	r.logger.Debug("Registration service: creating account with role",
		"email", email,
		"role_id", roleID)

	if err := validateCredentials(normalizeEmail(email), password); err != nil {
		return model.Account{}, err
	}

	roleRecord, err := r.roles.ByID(roleID)
	if err != nil {
		r.logger.Info("Registration service: unknown role requested",
			"role_id", roleID)
		return model.Account{}, err
	}

	return r.create(ctx, email, password, roleRecord)
}

// EnsureAdmin creates an ADMIN account when no active account exists yet.
// It reports whether an account was created.
func (r *Registration) EnsureAdmin(ctx context.Context, email, password string) (model.Account, bool, error) {
	if email == "" || password == "" {
		return model.Account{}, false, nil
	}

	active, err := r.accounts.CountActive(ctx)
	if err != nil {
		return model.Account{}, false, fmt.Errorf("failed to count active accounts: %w", err)
	}
	if active > 0 {
		return model.Account{}, false, nil
	}

	adminRole, err := r.roles.ByName(model.RoleAdmin)
	if err != nil {
		return model.Account{}, false, fmt.Errorf("failed to resolve admin role: %w", err)
	}

	account, err := r.CreateWithRole(ctx, email, password, adminRole.ID)
	if errors.Is(err, model.ErrConflict) {
		r.logger.Info("Registration service: bootstrap admin already exists", "email", email)
		return model.Account{}, false, nil
	}
	if err != nil {
		return model.Account{}, false, err
	}

	r.logger.Info("Registration service: bootstrap admin created",
		"email", account.Email,
		"account_id", account.ID)

	return account, true, nil
}

func (r *Registration) create(ctx context.Context, email, password string, roleRecord model.Role) (model.Account, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return model.Account{}, err
	}

	_, err := r.accounts.FindByEmail(ctx, email)
	if err == nil {
		r.logger.Info("Registration service: account already exists", "email", email)
		return model.Account{}, fmt.Errorf("email %s: %w", email, model.ErrConflict)
	}
	if !errors.Is(err, model.ErrNotFound) {
		r.logger.Error("Registration service: failed to get account by email",
			"email", email,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	hash, err := r.hasher.Hash(password)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	saved, err := r.accounts.Save(ctx, model.Account{
		Email:        email,
		PasswordHash: &hash,
		RoleID:       roleRecord.ID,
		AccountState: model.StateActive,
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			r.logger.Info("Registration service: account created concurrently", "email", email)
			return model.Account{}, fmt.Errorf("email %s: %w", email, model.ErrConflict)
		}
		r.logger.Error("Registration service: failed to create account",
			"email", email,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	r.logger.Info("Registration service: account created",
		"email", saved.Email,
		"account_id", saved.ID,
		"role", roleRecord.Name)

	return saved, nil
}
