package handler

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/foodygo/identity-server/internal/api/grpc/identityv1"
)

// Register creates a USER account.
func (h *Identity) Register(ctx context.Context, req *identityv1.RegisterRequest) (*identityv1.Account, error) {
	h.logger.Debug("Identity handler: processing register request", "email", req.Email)

	account, err := h.registration.Register(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Info("Identity handler: register failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return h.toAccount(account), nil
}

// Login exchanges email and password for a token pair.
func (h *Identity) Login(ctx context.Context, req *identityv1.LoginRequest) (*identityv1.Session, error) {
	h.logger.Debug("Identity handler: processing login request", "email", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	result, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, handleError(err)
	}

	return toSession(result), nil
}

// Refresh exchanges a refresh token for a new access token.
func (h *Identity) Refresh(ctx context.Context, req *identityv1.RefreshRequest) (*identityv1.Session, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	result, err := h.auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, handleError(err)
	}

	return toSession(result), nil
}

// Logout clears the caller's session. The bearer token has already been
// checked by the authentication interceptor.
func (h *Identity) Logout(ctx context.Context, _ *identityv1.LogoutRequest) (*identityv1.LogoutResponse, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, err
	}

	loggedOut, err := h.auth.Logout(ctx, token)
	if err != nil {
		h.logger.Error("Identity handler: logout failed", "error", err.Error())
		return nil, handleError(err)
	}

	return &identityv1.LogoutResponse{LoggedOut: loggedOut}, nil
}

// FederatedLogin verifies a Google ID token and starts a session for its email.
func (h *Identity) FederatedLogin(ctx context.Context, req *identityv1.FederatedLoginRequest) (*identityv1.Session, error) {
	if req.IDToken == "" {
		return nil, status.Error(codes.InvalidArgument, "id token is required")
	}

	identity, err := h.federation.Verify(ctx, req.IDToken)
	if err != nil {
		h.logger.Info("Identity handler: federated token rejected", "error", err.Error())
		return nil, handleError(err)
	}

	result, err := h.auth.LoginFederated(ctx, identity.Email, identity.FullName)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Info("Identity handler: federated login completed",
		"account_id", result.AccountID,
		"google_subject", identity.Subject)

	return toSession(result), nil
}
