package context

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/foodygo/identity-server/internal/model"
)

// Metadata keys carrying the authenticated caller. Authenticate overwrites
// both on every protected call, so values sent by clients never survive.
const (
	callerEmailKey string = "x-caller-email"
	callerRoleKey  string = "x-caller-role"
)

// Manager stores the authenticated caller in incoming gRPC metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetCallerToContext returns a context whose incoming metadata carries caller.
func (m *Manager) SetCallerToContext(ctx context.Context, caller model.Caller) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.MD{}
	} else {
		md = md.Copy()
	}
	md.Set(callerEmailKey, caller.Email)
	md.Set(callerRoleKey, string(caller.Role))

	return metadata.NewIncomingContext(ctx, md)
}

// GetCallerFromContext reads the caller set by SetCallerToContext.
func (m *Manager) GetCallerFromContext(ctx context.Context) (model.Caller, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return model.Caller{}, false
	}

	emails := md.Get(callerEmailKey)
	roles := md.Get(callerRoleKey)
	if len(emails) == 0 || len(roles) == 0 || emails[0] == "" {
		return model.Caller{}, false
	}

	return model.Caller{Email: emails[0], Role: model.RoleName(roles[0])}, true
}
