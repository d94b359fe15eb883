package handler

import (
	"context"
	"time"

	"github.com/foodygo/identity-server/internal/api/grpc/identityv1"
	"github.com/foodygo/identity-server/internal/federation"
	"github.com/foodygo/identity-server/internal/logger"
	"github.com/foodygo/identity-server/internal/model"
)

// AuthService defines login, refresh and logout operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.SessionResult, error)
	Refresh(ctx context.Context, refreshToken string) (model.SessionResult, error)
	Logout(ctx context.Context, accessToken string) (bool, error)
	LoginFederated(ctx context.Context, email, fullName string) (model.SessionResult, error)
}

// RegistrationService defines account creation.
type RegistrationService interface {
	Register(ctx context.Context, email, password string) (model.Account, error)
	CreateWithRole(ctx context.Context, email, password string, roleID model.RoleID) (model.Account, error)
}

// LifecycleService defines account state transitions.
type LifecycleService interface {
	Lock(ctx context.Context, id int64) (model.Account, error)
	Unlock(ctx context.Context, id int64) (model.Account, error)
	SoftDelete(ctx context.Context, id int64) (model.Account, error)
	Undelete(ctx context.Context, id int64) (model.Account, error)
}

// ProfileService defines profile reads and edits.
type ProfileService interface {
	Me(ctx context.Context, caller model.Caller) (model.Account, error)
	UpdateSelf(ctx context.Context, caller model.Caller, id int64, params model.UpdateAccountParams) (model.Account, error)
	UpdateWithRole(ctx context.Context, id int64, params model.UpdateAccountParams, roleID model.RoleID) (model.Account, error)
	Stats(ctx context.Context, since time.Time) (model.AccountStats, error)
	Roles() []model.Role
}

// FederationVerifier checks an external identity token.
type FederationVerifier interface {
	Verify(ctx context.Context, idToken string) (federation.Identity, error)
}

// Services groups the services the Identity handler delegates to.
type Services struct {
	Auth         AuthService
	Registration RegistrationService
	Lifecycle    LifecycleService
	Profile      ProfileService
	Federation   FederationVerifier
}

// Identity handles the foodygo.identity.v1.Identity gRPC service.
type Identity struct {
	identityv1.UnimplementedIdentityServer
	auth           AuthService
	registration   RegistrationService
	lifecycle      LifecycleService
	profile        ProfileService
	federation     FederationVerifier
	roles          model.RoleDirectory
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewIdentity creates a new Identity handler.
func NewIdentity(services Services, roles model.RoleDirectory, contextManager model.ContextManager, logger *logger.Logger) *Identity {
	return &Identity{
		auth:           services.Auth,
		registration:   services.Registration,
		lifecycle:      services.Lifecycle,
		profile:        services.Profile,
		federation:     services.Federation,
		roles:          roles,
		contextManager: contextManager,
		logger:         logger,
	}
}

var _ identityv1.IdentityServer = (*Identity)(nil)

func (h *Identity) toAccount(a model.Account) *identityv1.Account {
	out := &identityv1.Account{
		ID:        a.ID,
		Email:     a.Email,
		FullName:  a.FullName,
		RoleID:    int(a.RoleID),
		Enabled:   a.Enabled,
		NonLocked: a.NonLocked,
		Deleted:   a.Deleted,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Phone != nil {
		out.Phone = *a.Phone
	}
	if a.AvatarURL != nil {
		out.AvatarURL = *a.AvatarURL
	}
	if r, err := h.roles.ByID(a.RoleID); err == nil {
		out.Role = string(r.Name)
	}
	return out
}

func toSession(r model.SessionResult) *identityv1.Session {
	return &identityv1.Session{
		AccountID:    r.AccountID,
		Email:        r.Email,
		FullName:     r.FullName,
		Role:         string(r.Role),
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
	}
}
