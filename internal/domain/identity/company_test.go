package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	t.Run("creates company with hashed password", func(t *testing.T) {
		company, err := NewCompany("acme", "Acme Corp", "Secret1!", false)
		require.NoError(t, err)

		assert.Equal(t, "acme", company.ID)
		assert.Equal(t, "Acme Corp", company.Name)
		assert.True(t, company.IsEnabled)
		assert.False(t, company.IsAdmin)
		assert.NotEmpty(t, company.PasswordHash)
		assert.NotEqual(t, "Secret1!", company.PasswordHash)
		assert.False(t, company.CreatedAt.IsZero())
	})

	t.Run("rejects empty ID", func(t *testing.T) {
		_, err := NewCompany("", "Acme Corp", "Secret1!", false)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCompany("acme", "", "Secret1!", false)
		assert.Error(t, err)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := NewCompany("acme", "Acme Corp", "", false)
		assert.Error(t, err)
	})
}

func TestCompany_VerifyPassword(t *testing.T) {
	company, err := NewCompany("acme", "Acme Corp", "Secret1!", false)
	require.NoError(t, err)

	assert.True(t, company.VerifyPassword("Secret1!"))
	assert.False(t, company.VerifyPassword("wrong"))
	assert.False(t, company.VerifyPassword(""))
}

func TestCompany_SetEnabled(t *testing.T) {
	t.Run("disables and re-enables a regular company", func(t *testing.T) {
		company, err := NewCompany("acme", "Acme Corp", "Secret1!", false)
		require.NoError(t, err)

		company.SetEnabled(false)
		assert.False(t, company.IsEnabled)

		// Idempotent
		company.SetEnabled(false)
		assert.False(t, company.IsEnabled)

		company.SetEnabled(true)
		assert.True(t, company.IsEnabled)
	})

	t.Run("admin accounts are immune", func(t *testing.T) {
		admin, err := NewCompany("admin", "Administrator", "Secret1!", true)
		require.NoError(t, err)

		admin.SetEnabled(false)
		assert.True(t, admin.IsEnabled)
	})
}

func TestCompany_ResetPassword(t *testing.T) {
	t.Run("generates a fresh random credential", func(t *testing.T) {
		company, err := NewCompany("acme", "Acme Corp", "Secret1!", false)
		require.NoError(t, err)
		oldHash := company.PasswordHash

		plaintext, err := company.ResetPassword()
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(plaintext), 18)
		assert.NotEqual(t, oldHash, company.PasswordHash)
		assert.False(t, company.VerifyPassword("Secret1!"))
		assert.True(t, company.VerifyPassword(plaintext))
	})

	t.Run("admin accounts are immune", func(t *testing.T) {
		admin, err := NewCompany("admin", "Administrator", "Secret1!", true)
		require.NoError(t, err)
		oldHash := admin.PasswordHash

		_, err = admin.ResetPassword()
		assert.Error(t, err)
		assert.Equal(t, oldHash, admin.PasswordHash)
	})
}

func TestCompany_ChangePassword(t *testing.T) {
	company, err := NewCompany("acme", "Acme Corp", "Secret1!", false)
	require.NoError(t, err)

	t.Run("rejects wrong current password", func(t *testing.T) {
		err := company.ChangePassword("nope", "NewSecret99")
		assert.Error(t, err)
		assert.True(t, company.VerifyPassword("Secret1!"))
	})

	t.Run("rejects short new password", func(t *testing.T) {
		err := company.ChangePassword("Secret1!", "short")
		assert.Error(t, err)
	})

	t.Run("replaces the hash", func(t *testing.T) {
		err := company.ChangePassword("Secret1!", "NewSecret99")
		require.NoError(t, err)
		assert.True(t, company.VerifyPassword("NewSecret99"))
		assert.False(t, company.VerifyPassword("Secret1!"))
	})
}

func TestGeneratePassword(t *testing.T) {
	t.Run("enforces minimum length", func(t *testing.T) {
		password, err := GeneratePassword(4)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(password), 18)
	})

	t.Run("contains mixed alphanumerics", func(t *testing.T) {
		password, err := GeneratePassword(20)
		require.NoError(t, err)
		assert.True(t, hasLower(password))
		assert.True(t, hasUpper(password))
		assert.True(t, hasDigit(password))
	})

	t.Run("successive passwords differ", func(t *testing.T) {
		a, err := GeneratePassword(20)
		require.NoError(t, err)
		b, err := GeneratePassword(20)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}
