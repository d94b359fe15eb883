package router

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpcctx "github.com/foodygo/identity-server/internal/api/grpc/context"
	"github.com/foodygo/identity-server/internal/api/grpc/handler"
	"github.com/foodygo/identity-server/internal/api/grpc/identityv1"
	"github.com/foodygo/identity-server/internal/mocks"
	"github.com/foodygo/identity-server/internal/model"
	"github.com/foodygo/identity-server/internal/role"
	"github.com/foodygo/identity-server/internal/testutil"
)

type routerDeps struct {
	authenticator *mocks.Authenticator
	auth          *mocks.AuthService
	registration  *mocks.RegistrationService
	lifecycle     *mocks.LifecycleService
	profile       *mocks.ProfileService
}

func startServer(t *testing.T) (*grpc.ClientConn, routerDeps) {
	t.Helper()

	deps := routerDeps{
		authenticator: mocks.NewAuthenticator(t),
		auth:          mocks.NewAuthService(t),
		registration:  mocks.NewRegistrationService(t),
		lifecycle:     mocks.NewLifecycleService(t),
		profile:       mocks.NewProfileService(t),
	}

	r := New(handler.Services{
		Auth:         deps.auth,
		Registration: deps.registration,
		Lifecycle:    deps.lifecycle,
		Profile:      deps.profile,
		Federation:   mocks.NewFederationVerifier(t),
	}, deps.authenticator, role.NewDirectory(), grpcctx.NewManager(), testutil.MakeNoopLogger())
	s := r.Register()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, deps
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	s := New(handler.Services{}, mocks.NewAuthenticator(t), role.NewDirectory(), mocks.NewContextManager(t), testutil.MakeNoopLogger()).Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	svc, ok := info[identityv1.ServiceName]
	require.True(t, ok)
	assert.Len(t, svc.Methods, 15)
}

func TestRouter_PublicMethodSkipsAuthentication(t *testing.T) {
	t.Parallel()

	conn, deps := startServer(t)
	deps.registration.On("Register", mock.Anything, "a@x.com", "secret1").
		Return(model.Account{ID: 1, Email: "a@x.com", RoleID: role.UserID, AccountState: model.StateActive}, nil)

	out, err := identityv1.Invoke[identityv1.RegisterRequest, identityv1.Account](
		context.Background(), conn, identityv1.Identity_Register_FullMethodName,
		&identityv1.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", out.Email)
	assert.Equal(t, "USER", out.Role)
}

func TestRouter_ProtectedMethodRequiresToken(t *testing.T) {
	t.Parallel()

	conn, _ := startServer(t)

	_, err := identityv1.Invoke[identityv1.MeRequest, identityv1.Account](
		context.Background(), conn, identityv1.Identity_Me_FullMethodName, &identityv1.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRouter_SelfServiceWithUserToken(t *testing.T) {
	t.Parallel()

	conn, deps := startServer(t)
	caller := model.Caller{Email: "a@x.com", Role: model.RoleUser}
	deps.authenticator.On("Authenticate", mock.Anything, "user-token").Return(caller, nil)
	deps.profile.On("Me", mock.Anything, caller).Return(model.Account{ID: 1, Email: "a@x.com", RoleID: role.UserID}, nil)

	out, err := identityv1.Invoke[identityv1.MeRequest, identityv1.Account](
		withToken("user-token"), conn, identityv1.Identity_Me_FullMethodName, &identityv1.MeRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
}

func TestRouter_AdminMethodDeniedForUser(t *testing.T) {
	t.Parallel()

	conn, deps := startServer(t)
	deps.authenticator.On("Authenticate", mock.Anything, "user-token").
		Return(model.Caller{Email: "a@x.com", Role: model.RoleUser}, nil)

	_, err := identityv1.Invoke[identityv1.AccountIDRequest, identityv1.Account](
		withToken("user-token"), conn, identityv1.Identity_Lock_FullMethodName, &identityv1.AccountIDRequest{ID: 1})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestRouter_AdminMethodAllowedForAdmin(t *testing.T) {
	t.Parallel()

	conn, deps := startServer(t)
	deps.authenticator.On("Authenticate", mock.Anything, "admin-token").
		Return(model.Caller{Email: "root@x.com", Role: model.RoleAdmin}, nil)
	deps.lifecycle.On("Lock", mock.Anything, int64(1)).Return(model.Account{ID: 1, RoleID: role.UserID}, nil)

	out, err := identityv1.Invoke[identityv1.AccountIDRequest, identityv1.Account](
		withToken("admin-token"), conn, identityv1.Identity_Lock_FullMethodName, &identityv1.AccountIDRequest{ID: 1})
	require.NoError(t, err)
	assert.False(t, out.NonLocked)
}

func TestRouter_RevokedTokenRejected(t *testing.T) {
	t.Parallel()

	conn, deps := startServer(t)
	deps.authenticator.On("Authenticate", mock.Anything, "old-token").
		Return(model.Caller{}, fmt.Errorf("access token no longer valid: %w", model.ErrUnauthorized))

	_, err := identityv1.Invoke[identityv1.LogoutRequest, identityv1.LogoutResponse](
		withToken("old-token"), conn, identityv1.Identity_Logout_FullMethodName, &identityv1.LogoutRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRouter_PanicRecovered(t *testing.T) {
	t.Parallel()

	conn, deps := startServer(t)
	deps.auth.On("Refresh", mock.Anything, "ref").Panic("boom")

	_, err := identityv1.Invoke[identityv1.RefreshRequest, identityv1.Session](
		context.Background(), conn, identityv1.Identity_Refresh_FullMethodName, &identityv1.RefreshRequest{RefreshToken: "ref"})
	assert.Equal(t, codes.Internal, status.Code(err))
}
