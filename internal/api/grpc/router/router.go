package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/foodygo/identity-server/internal/api/grpc/handler"
	"github.com/foodygo/identity-server/internal/api/grpc/identityv1"
	"github.com/foodygo/identity-server/internal/api/grpc/middleware"
	"github.com/foodygo/identity-server/internal/logger"
	"github.com/foodygo/identity-server/internal/model"
)

// publicMethods are reachable without a bearer token.
var publicMethods = map[string]struct{}{
	identityv1.Identity_Register_FullMethodName:       {},
	identityv1.Identity_Login_FullMethodName:          {},
	identityv1.Identity_Refresh_FullMethodName:        {},
	identityv1.Identity_FederatedLogin_FullMethodName: {},
}

// selfServiceMethods need an authenticated caller of any role.
var selfServiceMethods = map[string]struct{}{
	identityv1.Identity_Logout_FullMethodName:     {},
	identityv1.Identity_Me_FullMethodName:         {},
	identityv1.Identity_UpdateSelf_FullMethodName: {},
}

// Router builds the gRPC server for the identity service.
type Router struct {
	services       handler.Services
	authenticator  middleware.Authenticator
	roles          model.RoleDirectory
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	services handler.Services,
	authenticator middleware.Authenticator,
	roles model.RoleDirectory,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		authenticator:  authenticator,
		roles:          roles,
		contextManager: contextManager,
		logger:         logger,
	}
}

func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	_, public := publicMethods[c.FullMethod()]
	return !public
}

func requiresAdmin(ctx context.Context, c interceptors.CallMeta) bool {
	_, self := selfServiceMethods[c.FullMethod()]
	return !self && requiresAuth(ctx, c)
}

// Register creates the gRPC server with recovery, logging, authentication
// and admin authorization interceptors and registers the Identity service.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoverer := middleware.NewRecovery(r.logger)
	authenticate := middleware.NewAuthenticate(r.authenticator, r.contextManager, r.logger)
	adminOnly := middleware.NewAdminOnly(r.contextManager, r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(recoverer.Handle)),
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
			selector.UnaryServerInterceptor(
				adminOnly.HandleGRPC,
				selector.MatchFunc(requiresAdmin),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerIdentityRoutes(s)

	return s
}

func (r *Router) registerIdentityRoutes(server *grpc.Server) {
	identityHandler := handler.NewIdentity(r.services, r.roles, r.contextManager, r.logger)
	identityv1.RegisterIdentityServer(server, identityHandler)
}
