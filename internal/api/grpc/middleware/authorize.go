package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/foodygo/identity-server/internal/logger"
	"github.com/foodygo/identity-server/internal/model"
)

// AdminOnly rejects calls whose authenticated caller is not an ADMIN.
// It must run after Authenticate.
type AdminOnly struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAdminOnly(contextManager model.ContextManager, logger *logger.Logger) *AdminOnly {
	return &AdminOnly{contextManager: contextManager, logger: logger}
}

func (a *AdminOnly) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	caller, ok := a.contextManager.GetCallerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	if !caller.IsAdmin() {
		a.logger.Info("AdminOnly middleware: access denied",
			"method", info.FullMethod,
			"caller", caller.Email,
			"role", caller.Role)
		return nil, status.Error(codes.PermissionDenied, "admin role required")
	}
	return handler(ctx, req)
}
