package postgres

import (
	"context"
	"fmt"

	"github.com/foodygo/identity-server/internal/model"
)

var _ model.CustomerStore = (*CustomerRepository)(nil)

type CustomerRepository struct {
	db *Connection
}

func NewCustomerRepository(db *Connection) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// MarkDeletedByAccount flags the customer profile owned by accountID. Accounts
// without a profile are not an error.
func (r *CustomerRepository) MarkDeletedByAccount(ctx context.Context, accountID int64) error {
	const query = `UPDATE customers SET deleted = TRUE, updated_at = NOW()
				   WHERE account_id = $1 AND NOT deleted`

	if _, err := r.db.Exec(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to mark customer deleted: %w", err)
	}
	return nil
}
