package federation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"github.com/foodygo/identity-server/internal/model"
)

func newTestGoogle(payload *idtoken.Payload, err error) *Google {
	g := NewGoogle("client-id")
	g.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if audience != "client-id" {
			return nil, errors.New("audience mismatch")
		}
		return payload, err
	}
	return g
}

func TestGoogle_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("verified email", func(t *testing.T) {
		g := newTestGoogle(&idtoken.Payload{
			Subject: "1234",
			Claims: map[string]interface{}{
				"email":          "a@x.com",
				"email_verified": true,
				"given_name":     "Ann",
				"family_name":    "Lee",
			},
		}, nil)

		identity, err := g.Verify(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, Identity{Subject: "1234", Email: "a@x.com", FullName: "Ann Lee"}, identity)
	})

	t.Run("string verified flag", func(t *testing.T) {
		g := newTestGoogle(&idtoken.Payload{
			Claims: map[string]interface{}{"email": "a@x.com", "email_verified": "true", "name": "Ann"},
		}, nil)

		identity, err := g.Verify(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "Ann", identity.FullName)
	})

	t.Run("unverified email", func(t *testing.T) {
		g := newTestGoogle(&idtoken.Payload{
			Claims: map[string]interface{}{"email": "a@x.com", "email_verified": false},
		}, nil)

		_, err := g.Verify(ctx, "token")
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("missing email", func(t *testing.T) {
		g := newTestGoogle(&idtoken.Payload{Claims: map[string]interface{}{}}, nil)

		_, err := g.Verify(ctx, "token")
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("validation failure", func(t *testing.T) {
		g := newTestGoogle(nil, errors.New("idtoken: token expired"))

		_, err := g.Verify(ctx, "token")
		assert.ErrorIs(t, err, model.ErrUnauthorized)
		assert.Contains(t, err.Error(), "token expired")
	})

	t.Run("empty token", func(t *testing.T) {
		g := newTestGoogle(nil, nil)

		_, err := g.Verify(ctx, "")
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := NewGoogle("").Verify(ctx, "token")
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}
