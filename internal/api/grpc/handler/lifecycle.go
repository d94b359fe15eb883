package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/foodygo/identity-server/internal/api/grpc/identityv1"
	"github.com/foodygo/identity-server/internal/model"
)

// Lock disables an account.
func (h *Identity) Lock(ctx context.Context, req *identityv1.AccountIDRequest) (*identityv1.Account, error) {
	return h.transition(ctx, "lock", req, h.lifecycle.Lock)
}

// Unlock re-enables a locked account.
func (h *Identity) Unlock(ctx context.Context, req *identityv1.AccountIDRequest) (*identityv1.Account, error) {
	return h.transition(ctx, "unlock", req, h.lifecycle.Unlock)
}

// SoftDelete suspends an account.
func (h *Identity) SoftDelete(ctx context.Context, req *identityv1.AccountIDRequest) (*identityv1.Account, error) {
	return h.transition(ctx, "soft delete", req, h.lifecycle.SoftDelete)
}

// Undelete reactivates an account.
func (h *Identity) Undelete(ctx context.Context, req *identityv1.AccountIDRequest) (*identityv1.Account, error) {
	return h.transition(ctx, "undelete", req, h.lifecycle.Undelete)
}

func (h *Identity) transition(
	ctx context.Context,
	op string,
	req *identityv1.AccountIDRequest,
	apply func(context.Context, int64) (model.Account, error),
) (*identityv1.Account, error) {
	if req.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "account id is required")
	}

	h.logger.Debug("Identity handler: processing state transition",
		"op", op,
		"account_id", req.ID)

	account, err := apply(ctx, req.ID)
	if err != nil {
		h.logger.Info("Identity handler: state transition failed",
			"op", op,
			"account_id", req.ID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return h.toAccount(account), nil
}
