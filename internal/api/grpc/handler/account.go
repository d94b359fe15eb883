package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/foodygo/identity-server/internal/api/grpc/identityv1"
	"github.com/foodygo/identity-server/internal/model"
)

// Me returns the caller's account.
func (h *Identity) Me(ctx context.Context, _ *identityv1.MeRequest) (*identityv1.Account, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	account, err := h.profile.Me(ctx, caller)
	if err != nil {
		return nil, handleError(err)
	}

	return h.toAccount(account), nil
}

// UpdateSelf edits the caller's own account.
func (h *Identity) UpdateSelf(ctx context.Context, req *identityv1.UpdateSelfRequest) (*identityv1.Account, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	account, err := h.profile.UpdateSelf(ctx, caller, req.ID, model.UpdateAccountParams{
		Password: req.Password,
		Phone:    req.Phone,
		FullName: req.FullName,
	})
	if err != nil {
		h.logger.Info("Identity handler: self update failed",
			"caller", caller.Email,
			"account_id", req.ID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return h.toAccount(account), nil
}

// ListRoles returns every role.
func (h *Identity) ListRoles(_ context.Context, _ *identityv1.ListRolesRequest) (*identityv1.ListRolesResponse, error) {
	roles := h.profile.Roles()

	out := make([]identityv1.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, identityv1.Role{ID: int(r.ID), Name: string(r.Name)})
	}

	return &identityv1.ListRolesResponse{Roles: out}, nil
}

// CreateWithRole creates an account with an explicit role.
func (h *Identity) CreateWithRole(ctx context.Context, req *identityv1.CreateWithRoleRequest) (*identityv1.Account, error) {
	account, err := h.registration.CreateWithRole(ctx, req.Email, req.Password, model.RoleID(req.RoleID))
	if err != nil {
		return nil, handleError(err)
	}

	return h.toAccount(account), nil
}

// UpdateWithRole edits any account and sets its role when role_id is non-zero.
func (h *Identity) UpdateWithRole(ctx context.Context, req *identityv1.UpdateWithRoleRequest) (*identityv1.Account, error) {
	if req.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "account id is required")
	}

	account, err := h.profile.UpdateWithRole(ctx, req.ID, model.UpdateAccountParams{
		Password: req.Password,
		Phone:    req.Phone,
		FullName: req.FullName,
	}, model.RoleID(req.RoleID))
	if err != nil {
		return nil, handleError(err)
	}

	return h.toAccount(account), nil
}

// Stats reports account counters.
func (h *Identity) Stats(ctx context.Context, req *identityv1.StatsRequest) (*identityv1.StatsResponse, error) {
	var since time.Time
	if req.Since != nil {
		since = *req.Since
	}

	stats, err := h.profile.Stats(ctx, since)
	if err != nil {
		return nil, handleError(err)
	}

	return &identityv1.StatsResponse{
		Active:          stats.Active,
		RegisteredSince: stats.RegisteredSince,
		Since:           stats.Since,
	}, nil
}

func (h *Identity) caller(ctx context.Context) (model.Caller, error) {
	caller, ok := h.contextManager.GetCallerFromContext(ctx)
	if !ok {
		return model.Caller{}, status.Error(codes.Unauthenticated, "authentication required")
	}
	return caller, nil
}
