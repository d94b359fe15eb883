package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"

	"github.com/foodygo/identity-server/internal/model"
)

func TestManager_SetAndGetCaller(t *testing.T) {
	m := NewManager()
	caller := model.Caller{Email: "a@x.com", Role: model.RoleAdmin}
	ctx := m.SetCallerToContext(stdctx.Background(), caller)

	got, ok := m.GetCallerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, caller, got)
}

func TestManager_GetCaller_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetCallerFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_SetCaller_OverwritesClientMetadata(t *testing.T) {
	m := NewManager()
	baseMD := metadata.New(map[string]string{
		"x-trace-id":     "t",
		"x-caller-email": "spoofed@x.com",
		"x-caller-role":  "ADMIN",
	})
	ctxWithMD := metadata.NewIncomingContext(stdctx.Background(), baseMD)

	ctx := m.SetCallerToContext(ctxWithMD, model.Caller{Email: "a@x.com", Role: model.RoleUser})
	got, ok := m.GetCallerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, model.Caller{Email: "a@x.com", Role: model.RoleUser}, got)

	md, _ := metadata.FromIncomingContext(ctx)
	assert.Equal(t, []string{"t"}, md.Get("x-trace-id"))
	assert.Equal(t, []string{"spoofed@x.com"}, baseMD.Get("x-caller-email"))
}

func TestManager_GetCaller_MissingRole(t *testing.T) {
	m := NewManager()
	md := metadata.New(map[string]string{"x-caller-email": "a@x.com"})
	ctx := metadata.NewIncomingContext(stdctx.Background(), md)
	_, ok := m.GetCallerFromContext(ctx)
	assert.False(t, ok)
}
