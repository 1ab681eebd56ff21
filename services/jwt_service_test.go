package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("")
	assert.Error(t, err)

	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	token, err := svc.Generate("user-123", "ali@example.com", "Ali")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ali@example.com", claims.Email)
	assert.Equal(t, "Ali", claims.Name)
	assert.Equal(t, "atlas-backoffice", claims.Issuer)
}

func TestJWTService_Generate_RequiresIdentity(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	_, err = svc.Generate("", "ali@example.com", "Ali")
	assert.Error(t, err)
	_, err = svc.Generate("user-123", "", "Ali")
	assert.Error(t, err)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	signer, err := NewJWTService("secret-a")
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-b")
	require.NoError(t, err)

	token, err := signer.Generate("user-123", "ali@example.com", "Ali")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	_, err = svc.Verify("not.a.token")
	assert.Error(t, err)
	_, err = svc.Verify("")
	assert.Error(t, err)
}
