package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodygo/identity-server/internal/model"
)

var principal = model.Principal{Email: "a@x.com", Role: model.RoleUser}

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 0, 0)

	access, err := j.IssueAccess(principal)
	require.NoError(t, err)

	claims, err := j.Validate(access, model.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Equal(t, model.TokenKindAccess, claims.Kind)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, claims.IssuedAt.Add(defaultAccessTTL), claims.ExpiresAt, time.Second)
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Minute, time.Hour)

	refresh, err := j.IssueRefresh(principal)
	require.NoError(t, err)

	claims, err := j.Validate(refresh, model.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, model.TokenKindRefresh, claims.Kind)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt, time.Second)

	subject, err := j.SubjectOf(refresh, model.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestJWT_TokensAreUnique(t *testing.T) {
	j := NewJWT("secret", 0, 0)

	first, err := j.IssueRefresh(principal)
	require.NoError(t, err)
	second, err := j.IssueRefresh(principal)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	j := NewJWT("secret", 0, 0)

	access, err := j.IssueAccess(principal)
	require.NoError(t, err)
	_, err = j.Validate(access, model.TokenKindRefresh)
	require.ErrorIs(t, err, model.ErrUnauthorized)

	refresh, err := j.IssueRefresh(principal)
	require.NoError(t, err)
	_, err = j.SubjectOf(refresh, model.TokenKindAccess)
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	issuer := NewJWT("secret", time.Minute, time.Hour, WithClock(func() time.Time { return issuedAt }))

	access, err := issuer.IssueAccess(principal)
	require.NoError(t, err)
	refresh, err := issuer.IssueRefresh(principal)
	require.NoError(t, err)

	validator := NewJWT("secret", time.Minute, time.Hour)
	_, err = validator.Validate(access, model.TokenKindAccess)
	require.ErrorIs(t, err, model.ErrUnauthorized)
	_, err = validator.Validate(refresh, model.TokenKindRefresh)
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestJWT_WrongSecret(t *testing.T) {
	access, err := NewJWT("secret", 0, 0).IssueAccess(principal)
	require.NoError(t, err)

	_, err = NewJWT("other", 0, 0).Validate(access, model.TokenKindAccess)
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestJWT_RejectsNonHMAC(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		TokenType: model.TokenKindAccess,
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret", 0, 0).Validate(unsigned, model.TokenKindAccess)
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret", 0, 0)

	for _, in := range []string{"", "garbage", strings.Repeat("a.", 3)} {
		_, err := j.Validate(in, model.TokenKindAccess)
		require.ErrorIs(t, err, model.ErrUnauthorized)
	}
}

func TestJWT_EmptySubject(t *testing.T) {
	_, err := NewJWT("secret", 0, 0).IssueAccess(model.Principal{})
	require.Error(t, err)
}
