package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndValidate(t *testing.T) {
	svc := NewAuthService("admin", "secret", "jwt-secret")

	resp, err := svc.Login("admin", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Username)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := NewAuthService("admin", "secret", "jwt-secret")
	_, err := svc.Login("admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateRejectsForeignToken(t *testing.T) {
	issuer := NewAuthService("admin", "secret", "one")
	verifier := NewAuthService("admin", "secret", "two")

	resp, err := issuer.Login("admin", "secret")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = verifier.ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
