package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/foodygo/identity-server/internal/logger"
	"github.com/foodygo/identity-server/internal/model"
)

const maxFullNameLength = 255

// Profile serves the caller's own account and administrative profile edits.
type Profile struct {
	accounts model.AccountStore
	roles    model.RoleDirectory
	hasher   model.PasswordHasher
	phones   model.PhoneNormalizer
	logger   *logger.Logger
	now      func() time.Time
}

func NewProfile(
	accounts model.AccountStore,
	roles model.RoleDirectory,
	hasher model.PasswordHasher,
	phones model.PhoneNormalizer,
	logger *logger.Logger,
) *Profile {
	return &Profile{
		accounts: accounts,
		roles:    roles,
		hasher:   hasher,
		phones:   phones,
		logger:   logger,
		now:      time.Now,
	}
}

// Me returns the caller's account.
func (p *Profile) Me(ctx context.Context, caller model.Caller) (model.Account, error) {
	account, err := p.accounts.FindByEmail(ctx, caller.Email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("caller account: %w", model.ErrUnauthorized)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}
	return account, nil
}

// UpdateSelf applies params to account id, which must belong to the caller.
func (p *Profile) UpdateSelf(ctx context.Context, caller model.Caller, id int64, params model.UpdateAccountParams) (model.Account, error) {
	account, err := p.Me(ctx, caller)
	if err != nil {
		return model.Account{}, err
	}
	if account.ID != id {
		p.logger.Info("Profile service: update of foreign account denied",
			"caller", caller.Email,
			"account_id", id)
		return model.Account{}, fmt.Errorf("account %d is not owned by caller: %w", id, model.ErrUnauthorized)
	}

	return p.update(ctx, account, params)
}

// UpdateWithRole applies params and assigns roleID to account id. A zero
// roleID leaves the current role in place.
func (p *Profile) UpdateWithRole(ctx context.Context, id int64, params model.UpdateAccountParams, roleID model.RoleID) (model.Account, error) {
	var roleRecord model.Role
	if roleID != 0 {
		var err error
		roleRecord, err = p.roles.ByID(roleID)
		if err != nil {
			return model.Account{}, err
		}
	}

	account, err := p.accounts.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("account %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	if roleID != 0 {
		account.RoleID = roleRecord.ID
	}
	return p.update(ctx, account, params)
}

// Stats counts active accounts and accounts registered since the given time.
// A zero since defaults to the last 30 days.
func (p *Profile) Stats(ctx context.Context, since time.Time) (model.AccountStats, error) {
	if since.IsZero() {
		since = p.now().AddDate(0, 0, -30)
	}

	active, err := p.accounts.CountActive(ctx)
	if err != nil {
		return model.AccountStats{}, fmt.Errorf("failed to count active accounts: %w", err)
	}
	registered, err := p.accounts.CountRegisteredSince(ctx, since)
	if err != nil {
		return model.AccountStats{}, fmt.Errorf("failed to count registered accounts: %w", err)
	}

	return model.AccountStats{Active: active, RegisteredSince: registered, Since: since}, nil
}

// Roles lists every known role.
func (p *Profile) Roles() []model.Role {
	return p.roles.All()
}

func (p *Profile) update(ctx context.Context, account model.Account, params model.UpdateAccountParams) (model.Account, error) {
	if err := validateUpdate(params); err != nil {
		return model.Account{}, err
	}

	if params.Password != nil {
		hash, err := p.hasher.Hash(*params.Password)
		if err != nil {
			return model.Account{}, fmt.Errorf("failed to hash password: %w", err)
		}
		account.PasswordHash = &hash
	}

	if params.Phone != nil {
		phone, err := p.phones.Normalize(*params.Phone)
		if err != nil {
			return model.Account{}, err
		}
		owner, err := p.accounts.FindByPhone(ctx, phone)
		switch {
		case err == nil && owner.ID != account.ID:
			return model.Account{}, fmt.Errorf("phone %s: %w", phone, model.ErrConflict)
		case err != nil && !errors.Is(err, model.ErrNotFound):
			return model.Account{}, fmt.Errorf("failed to get account by phone: %w", err)
		}
		account.Phone = &phone
	}

	if params.FullName != nil {
		account.FullName = strings.TrimSpace(*params.FullName)
	}

	saved, err := p.accounts.Save(ctx, account)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.Account{}, err
		}
		p.logger.Error("Profile service: failed to save account",
			"account_id", account.ID,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to save account: %w", err)
	}

	p.logger.Info("Profile service: account updated", "account_id", saved.ID)

	return saved, nil
}

func validateUpdate(params model.UpdateAccountParams) error {
	errs := validation.Errors{}
	if params.Password != nil {
		errs["password"] = validatePassword(*params.Password)
	}
	if params.FullName != nil {
		errs["full_name"] = validation.Validate(strings.TrimSpace(*params.FullName), validation.Length(0, maxFullNameLength))
	}
	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %s", model.ErrInvalidArgument, err.Error())
	}
	return nil
}
