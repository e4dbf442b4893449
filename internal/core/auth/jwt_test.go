package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParse(t *testing.T) {
	j := &JWTer{Secret: []byte("k"), Issuer: "curriculo-api", TTL: time.Hour}

	tok, err := j.Issue("ops", "editor")
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "ops", c.Subject)
	assert.Equal(t, "editor", c.Role)
	assert.Equal(t, "curriculo-api", c.Issuer)
}

func TestParseRejects(t *testing.T) {
	j := &JWTer{Secret: []byte("k"), Issuer: "curriculo-api", TTL: time.Hour}

	other := &JWTer{Secret: []byte("other"), Issuer: "curriculo-api", TTL: time.Hour}
	tok, err := other.Issue("ops", "editor")
	require.NoError(t, err)
	_, err = j.Parse(tok)
	assert.Error(t, err, "wrong secret")

	wrongIss := &JWTer{Secret: []byte("k"), Issuer: "someone-else", TTL: time.Hour}
	tok, err = wrongIss.Issue("ops", "editor")
	require.NoError(t, err)
	_, err = j.Parse(tok)
	assert.Error(t, err, "wrong issuer")

	expired := &JWTer{Secret: []byte("k"), Issuer: "curriculo-api", TTL: -time.Hour}
	tok, err = expired.Issue("ops", "editor")
	require.NoError(t, err)
	_, err = j.Parse(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestIssueWithoutSecret(t *testing.T) {
	_, err := (&JWTer{}).Issue("ops", RoleAdmin)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestCanWrite(t *testing.T) {
	assert.True(t, (&Claims{Role: RoleEditor}).CanWrite())
	assert.True(t, (&Claims{Role: RoleAdmin}).CanWrite())
	assert.False(t, (&Claims{Role: "viewer"}).CanWrite())
}
