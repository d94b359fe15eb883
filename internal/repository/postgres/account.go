package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/foodygo/identity-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

const accountColumns = `id, email, phone, full_name, avatar_url, password_hash, role_id,
	access_token, refresh_token, enabled, non_locked, deleted, created_at, updated_at`

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (model.Account, error) {
	var a model.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.Phone, &a.FullName, &a.AvatarURL, &a.PasswordHash, &a.RoleID,
		&a.AccessToken, &a.RefreshToken, &a.Enabled, &a.NonLocked, &a.Deleted,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *AccountRepository) findOne(ctx context.Context, op, query string, arg any) (model.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by %s: %w", op, err)
	}
	return account, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	return r.findOne(ctx, "email", `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
}

func (r *AccountRepository) FindByPhone(ctx context.Context, phone string) (model.Account, error) {
	return r.findOne(ctx, "phone", `SELECT `+accountColumns+` FROM accounts WHERE phone = $1 AND NOT deleted`, phone)
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (model.Account, error) {
	return r.findOne(ctx, "id", `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (r *AccountRepository) Save(ctx context.Context, a model.Account) (model.Account, error) {
	if a.ID == 0 {
		return r.insert(ctx, a)
	}

	query := `UPDATE accounts
			  SET email = $2, phone = $3, full_name = $4, avatar_url = $5, password_hash = $6,
			      role_id = $7, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + accountColumns

	saved, err := scanAccount(r.db.QueryRow(ctx, query,
		a.ID, a.Email, a.Phone, a.FullName, a.AvatarURL, a.PasswordHash, a.RoleID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, mapError(err, "update account")
	}
	return saved, nil
}

func (r *AccountRepository) insert(ctx context.Context, a model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (email, phone, full_name, avatar_url, password_hash, role_id,
			      access_token, refresh_token, enabled, non_locked, deleted, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
			  RETURNING ` + accountColumns

	saved, err := scanAccount(r.db.QueryRow(ctx, query,
		a.Email, a.Phone, a.FullName, a.AvatarURL, a.PasswordHash, a.RoleID,
		a.AccessToken, a.RefreshToken, a.Enabled, a.NonLocked, a.Deleted,
	))
	if err != nil {
		return model.Account{}, mapError(err, "create account")
	}
	return saved, nil
}

func (r *AccountRepository) CountActive(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM accounts WHERE enabled AND non_locked AND NOT deleted`

	var n int64
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count active accounts: %w", err)
	}
	return n, nil
}

func (r *AccountRepository) CountRegisteredSince(ctx context.Context, since time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM accounts WHERE created_at >= $1`

	var n int64
	if err := r.db.QueryRow(ctx, query, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return n, nil
}

func (r *AccountRepository) StoreSession(ctx context.Context, id int64, accessToken, refreshToken string) error {
	const query = `UPDATE accounts SET access_token = $2, refresh_token = $3, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, accessToken, refreshToken)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) RotateAccess(ctx context.Context, id int64, presentedRefresh, accessToken string) error {
	const query = `UPDATE accounts SET access_token = $3, updated_at = NOW()
				   WHERE id = $1 AND refresh_token = $2`

	tag, err := r.db.Exec(ctx, query, id, presentedRefresh, accessToken)
	if err != nil {
		return fmt.Errorf("failed to rotate access token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) ClearSession(ctx context.Context, id int64) (model.Account, error) {
	query := `UPDATE accounts SET access_token = NULL, refresh_token = NULL, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + accountColumns

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to clear session: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) SetState(ctx context.Context, id int64, state model.AccountState) (model.Account, error) {
	query := `UPDATE accounts SET enabled = $2, non_locked = $3, deleted = $4, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + accountColumns

	account, err := scanAccount(r.db.QueryRow(ctx, query, id, state.Enabled, state.NonLocked, state.Deleted))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, mapError(err, "set account state")
	}
	return account, nil
}
