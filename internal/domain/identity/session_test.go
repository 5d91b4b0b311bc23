package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialMatches(t *testing.T) {
	cred := Credential{
		ID:          "cred-1",
		Email:       "user@shopverse.com",
		Secret:      "user123",
		DisplayName: "John Doe",
	}

	t.Run("matches exact email and secret", func(t *testing.T) {
		assert.True(t, cred.Matches("user@shopverse.com", "user123"))
	})

	t.Run("email comparison is exact, including case", func(t *testing.T) {
		assert.False(t, cred.Matches("User@ShopVerse.com", "user123"))
		assert.False(t, cred.HasEmail("USER@SHOPVERSE.COM"))
	})

	t.Run("secret comparison is exact", func(t *testing.T) {
		assert.False(t, cred.Matches("user@shopverse.com", "USER123"))
		assert.False(t, cred.Matches("user@shopverse.com", ""))
	})

	t.Run("wrong email does not match", func(t *testing.T) {
		assert.False(t, cred.Matches("other@shopverse.com", "user123"))
	})
}

func TestCredentialSession(t *testing.T) {
	cred := Credential{
		ID:          "cred-1",
		Email:       "admin@shopverse.com",
		Secret:      "admin123",
		DisplayName: "Admin User",
		Admin:       true,
	}

	session := cred.Session()
	assert.Equal(t, "cred-1", session.ID)
	assert.Equal(t, "admin@shopverse.com", session.Email)
	assert.Equal(t, "Admin User", session.DisplayName)
	assert.True(t, session.Admin)
}

func TestSeedCredentials(t *testing.T) {
	creds := SeedCredentials()
	require.Len(t, creds, 2)

	assert.True(t, creds[0].Admin)
	assert.False(t, creds[1].Admin)
	assert.True(t, creds[0].HasEmail("admin@shopverse.com"))
	assert.True(t, creds[1].HasEmail("user@shopverse.com"))
}
