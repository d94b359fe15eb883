package identityv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "foodygo.identity.v1.Identity"

const (
	Identity_Register_FullMethodName       = "/" + ServiceName + "/Register"
	Identity_Login_FullMethodName          = "/" + ServiceName + "/Login"
	Identity_Refresh_FullMethodName        = "/" + ServiceName + "/Refresh"
	Identity_Logout_FullMethodName         = "/" + ServiceName + "/Logout"
	Identity_FederatedLogin_FullMethodName = "/" + ServiceName + "/FederatedLogin"
	Identity_Me_FullMethodName             = "/" + ServiceName + "/Me"
	Identity_UpdateSelf_FullMethodName     = "/" + ServiceName + "/UpdateSelf"
	Identity_ListRoles_FullMethodName      = "/" + ServiceName + "/ListRoles"
	Identity_CreateWithRole_FullMethodName = "/" + ServiceName + "/CreateWithRole"
	Identity_UpdateWithRole_FullMethodName = "/" + ServiceName + "/UpdateWithRole"
	Identity_Lock_FullMethodName           = "/" + ServiceName + "/Lock"
	Identity_Unlock_FullMethodName         = "/" + ServiceName + "/Unlock"
	Identity_SoftDelete_FullMethodName     = "/" + ServiceName + "/SoftDelete"
	Identity_Undelete_FullMethodName       = "/" + ServiceName + "/Undelete"
	Identity_Stats_FullMethodName          = "/" + ServiceName + "/Stats"
)

// IdentityServer is the server API for the Identity service.
type IdentityServer interface {
	Register(context.Context, *RegisterRequest) (*Account, error)
	Login(context.Context, *LoginRequest) (*Session, error)
	Refresh(context.Context, *RefreshRequest) (*Session, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	FederatedLogin(context.Context, *FederatedLoginRequest) (*Session, error)
	Me(context.Context, *MeRequest) (*Account, error)
	UpdateSelf(context.Context, *UpdateSelfRequest) (*Account, error)
	ListRoles(context.Context, *ListRolesRequest) (*ListRolesResponse, error)
	CreateWithRole(context.Context, *CreateWithRoleRequest) (*Account, error)
	UpdateWithRole(context.Context, *UpdateWithRoleRequest) (*Account, error)
	Lock(context.Context, *AccountIDRequest) (*Account, error)
	Unlock(context.Context, *AccountIDRequest) (*Account, error)
	SoftDelete(context.Context, *AccountIDRequest) (*Account, error)
	Undelete(context.Context, *AccountIDRequest) (*Account, error)
	Stats(context.Context, *StatsRequest) (*StatsResponse, error)
}

// UnimplementedIdentityServer can be embedded to have forward compatible implementations.
type UnimplementedIdentityServer struct{}

func (UnimplementedIdentityServer) Register(context.Context, *RegisterRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedIdentityServer) Login(context.Context, *LoginRequest) (*Session, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedIdentityServer) Refresh(context.Context, *RefreshRequest) (*Session, error) {
	return nil, status.Error(codes.Unimplemented, "method Refresh not implemented")
}
func (UnimplementedIdentityServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedIdentityServer) FederatedLogin(context.Context, *FederatedLoginRequest) (*Session, error) {
	return nil, status.Error(codes.Unimplemented, "method FederatedLogin not implemented")
}
func (UnimplementedIdentityServer) Me(context.Context, *MeRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method Me not implemented")
}
func (UnimplementedIdentityServer) UpdateSelf(context.Context, *UpdateSelfRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSelf not implemented")
}
func (UnimplementedIdentityServer) ListRoles(context.Context, *ListRolesRequest) (*ListRolesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRoles not implemented")
}
func (UnimplementedIdentityServer) CreateWithRole(context.Context, *CreateWithRoleRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateWithRole not implemented")
}
func (UnimplementedIdentityServer) UpdateWithRole(context.Context, *UpdateWithRoleRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateWithRole not implemented")
}
func (UnimplementedIdentityServer) Lock(context.Context, *AccountIDRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method Lock not implemented")
}
func (UnimplementedIdentityServer) Unlock(context.Context, *AccountIDRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method Unlock not implemented")
}
func (UnimplementedIdentityServer) SoftDelete(context.Context, *AccountIDRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method SoftDelete not implemented")
}
func (UnimplementedIdentityServer) Undelete(context.Context, *AccountIDRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method Undelete not implemented")
}
func (UnimplementedIdentityServer) Stats(context.Context, *StatsRequest) (*StatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Stats not implemented")
}

// RegisterIdentityServer registers srv on s.
func RegisterIdentityServer(s grpc.ServiceRegistrar, srv IdentityServer) {
	s.RegisterService(&Identity_ServiceDesc, srv)
}

// Identity_ServiceDesc is the grpc.ServiceDesc for the Identity service.
var Identity_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IdentityServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Register", IdentityServer.Register),
		unary("Login", IdentityServer.Login),
		unary("Refresh", IdentityServer.Refresh),
		unary("Logout", IdentityServer.Logout),
		unary("FederatedLogin", IdentityServer.FederatedLogin),
		unary("Me", IdentityServer.Me),
		unary("UpdateSelf", IdentityServer.UpdateSelf),
		unary("ListRoles", IdentityServer.ListRoles),
		unary("CreateWithRole", IdentityServer.CreateWithRole),
		unary("UpdateWithRole", IdentityServer.UpdateWithRole),
		unary("Lock", IdentityServer.Lock),
		unary("Unlock", IdentityServer.Unlock),
		unary("SoftDelete", IdentityServer.SoftDelete),
		unary("Undelete", IdentityServer.Undelete),
		unary("Stats", IdentityServer.Stats),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "foodygo/identity/v1/identity.json",
}

func unary[Req, Resp any](name string, call func(IdentityServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(IdentityServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(IdentityServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Invoke calls method on cc with the JSON codec selected.
func Invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
