package middleware

import (
	"runtime/debug"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/foodygo/identity-server/internal/logger"
)

// Recovery turns handler panics into Internal errors.
type Recovery struct {
	logger *logger.Logger
}

func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

// Handle is a recovery.RecoveryHandlerFunc.
func (r *Recovery) Handle(p any) error {
	r.logger.Error("gRPC handler panicked",
		"panic", p,
		"stack", string(debug.Stack()))
	return status.Error(codes.Internal, "internal server error")
}
