package middleware

import (
	"context"
	"errors"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/foodygo/identity-server/internal/logger"
	"github.com/foodygo/identity-server/internal/model"
)

// Authenticator resolves the caller behind a bearer access token.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (model.Caller, error)
}

// Authenticate validates bearer tokens and injects the caller into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// AuthFunc reads the bearer token from the authorization header and returns
// a context carrying the authenticated caller.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, err
	}

	caller, err := m.authenticator.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			m.logger.Debug("Authenticate middleware: token rejected", "error", err.Error())
			return nil, status.Error(codes.Unauthenticated, "invalid authorization token")
		}
		m.logger.Error("Authenticate middleware: failed to authenticate", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal server error")
	}

	return m.contextManager.SetCallerToContext(ctx, caller), nil
}
