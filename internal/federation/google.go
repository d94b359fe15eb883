// Package federation verifies identities asserted by external providers.
package federation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"

	"github.com/foodygo/identity-server/internal/model"
)

// Identity is what an external provider asserts about the user.
type Identity struct {
	Subject  string
	Email    string
	FullName string
}

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Google verifies Google ID tokens issued for a single OAuth client.
type Google struct {
	clientID string
	validate validateFunc
}

func NewGoogle(clientID string) *Google {
	return &Google{clientID: clientID, validate: idtoken.Validate}
}

// Verify validates the ID token signature, audience and expiry and returns
// the asserted identity. The email must be present and verified.
func (g *Google) Verify(ctx context.Context, idToken string) (Identity, error) {
	if g.clientID == "" {
		return Identity{}, fmt.Errorf("google sign-in is not configured: %w", model.ErrUnauthorized)
	}
	if idToken == "" {
		return Identity{}, fmt.Errorf("%w: id token is required", model.ErrInvalidArgument)
	}

	payload, err := g.validate(ctx, idToken, g.clientID)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid google id token: %v: %w", err, model.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return Identity{}, fmt.Errorf("google id token has no email: %w", model.ErrUnauthorized)
	}
	if !emailVerified(payload.Claims["email_verified"]) {
		return Identity{}, fmt.Errorf("google email %s is not verified: %w", email, model.ErrUnauthorized)
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		given, _ := payload.Claims["given_name"].(string)
		family, _ := payload.Claims["family_name"].(string)
		name = strings.TrimSpace(given + " " + family)
	}

	return Identity{
		Subject:  payload.Subject,
		Email:    email,
		FullName: name,
	}, nil
}

// email_verified arrives as a bool or, from some issuers, as a string.
func emailVerified(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	default:
		return false
	}
}
