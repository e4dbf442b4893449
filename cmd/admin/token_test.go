package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curriculo-api/internal/core/auth"
)

func runAdmin(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("APP_JWT_SECRET", "s3cret")
	t.Setenv("APP_LOG_LEVEL", "error")
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestTokenCommand(t *testing.T) {
	tok, err := runAdmin(t, "token", "--subject", "ops", "--role", "admin")
	require.NoError(t, err)

	j := &auth.JWTer{Secret: []byte("s3cret"), Issuer: "curriculo-api"}
	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "ops", c.Subject)
	assert.Equal(t, "admin", c.Role)
}

func TestTokenCommandRejects(t *testing.T) {
	_, err := runAdmin(t, "token", "--subject", "ops", "--role", "viewer")
	assert.ErrorContains(t, err, "role must be editor or admin")

	_, err = runAdmin(t, "token", "--role", "editor")
	assert.ErrorContains(t, err, "subject")
}
