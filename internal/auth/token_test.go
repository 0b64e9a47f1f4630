package auth

import (
	"os"
	"testing"

	"rabt_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Env-mode config keeps the loader away from the YAML file.
	os.Setenv("DATABASE_URL", "postgres://unused")
	os.Setenv("JWT_SECRET", "unit_test_secret_key")
	config.LoadConfig()

	os.Exit(m.Run())
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-123", "engineer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "engineer", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseToken_RejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("user-123", "engineer")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
