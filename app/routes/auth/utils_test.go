package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", hash)

	assert.True(t, CheckPasswordHash("Secret123!", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("u-1", "Admin User", "admin@school.local", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, "admin@school.local", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "school-management", claims.Issuer)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	token, err := GenerateJWT("u-1", "Admin User", "admin@school.local", "admin")
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token")
	assert.Error(t, err)
}
