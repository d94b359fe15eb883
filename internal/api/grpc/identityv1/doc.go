// Package identityv1 describes the foodygo.identity.v1.Identity gRPC service.
//
// Messages are plain Go structs with json tags and travel with the JSON codec
// registered by this package under the content-subtype "json"
// (application/grpc+json on the wire). There are no protobuf descriptors, so
// server reflection is not available and a client must select the codec on
// every call:
//
//	conn, _ := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
//	session, err := identityv1.Invoke[identityv1.LoginRequest, identityv1.Session](
//		ctx, conn, identityv1.Identity_Login_FullMethodName,
//		&identityv1.LoginRequest{Email: "a@x.com", Password: "secret1"},
//	)
//
// Invoke adds grpc.CallContentSubtype(CodecName). Callers using
// grpc.ClientConn.Invoke directly must pass that option themselves.
//
// Register, Login, Refresh and FederatedLogin are public. Logout, Me and
// UpdateSelf need an "authorization: bearer <access token>" header. Every
// other method also requires the caller to hold the ADMIN role.
package identityv1
