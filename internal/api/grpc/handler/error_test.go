package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/foodygo/identity-server/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "status passthrough",
			in:       status.Error(codes.Unauthenticated, "missing token"),
			wantCode: codes.Unauthenticated,
			wantMsg:  "missing token",
		},
		{
			name:     "invalid credentials",
			in:       model.ErrInvalidCredentials,
			wantCode: codes.Unauthenticated,
			wantMsg:  "invalid email or password",
		},
		{
			name:     "unauthorized hides cause",
			in:       fmt.Errorf("refresh token superseded: %w", model.ErrUnauthorized),
			wantCode: codes.Unauthenticated,
			wantMsg:  "unauthorized",
		},
		{
			name:     "not found",
			in:       fmt.Errorf("account 7: %w", model.ErrNotFound),
			wantCode: codes.NotFound,
			wantMsg:  "account 7: not found",
		},
		{
			name:     "conflict",
			in:       fmt.Errorf("email a@x.com: %w", model.ErrConflict),
			wantCode: codes.AlreadyExists,
			wantMsg:  "email a@x.com: already exists",
		},
		{
			name:     "invalid state transition",
			in:       fmt.Errorf("account 7 is already active: %w", model.ErrInvalidStateTransition),
			wantCode: codes.FailedPrecondition,
			wantMsg:  "account 7 is already active: invalid state transition",
		},
		{
			name:     "invalid argument strips prefix",
			in:       fmt.Errorf("%w: email: must be a valid email address.", model.ErrInvalidArgument),
			wantCode: codes.InvalidArgument,
			wantMsg:  "email: must be a valid email address.",
		},
		{
			name:     "forbidden",
			in:       model.ErrForbidden,
			wantCode: codes.PermissionDenied,
			wantMsg:  "forbidden",
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := handleError(tt.in)
			st, ok := status.FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
