package model

import "context"

type ContextManager interface {
	SetCallerToContext(ctx context.Context, caller Caller) context.Context
	GetCallerFromContext(ctx context.Context) (Caller, bool)
}
