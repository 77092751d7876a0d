package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kyrec/backend/internal/domain/identity"
	"github.com/kyrec/backend/internal/domain/shared"
)

func setupCompanyTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&identity.Company{})
	require.NoError(t, err)

	return db
}

func TestCompanyRepository_SaveAndFind(t *testing.T) {
	db := setupCompanyTestDB(t)
	repo := NewGormCompanyRepository(db)
	ctx := context.Background()

	company, err := identity.NewCompany("acme", "Acme Corp", "Secret1!", false)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, company))

	found, err := repo.FindByID(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", found.Name)
	assert.True(t, found.IsEnabled)
	assert.True(t, found.VerifyPassword("Secret1!"))

	t.Run("missing company reports not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "globex")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCompanyRepository_Count(t *testing.T) {
	db := setupCompanyTestDB(t)
	repo := NewGormCompanyRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	company, err := identity.NewCompany("acme", "Acme Corp", "Secret1!", false)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, company))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCompanyRepository_Update(t *testing.T) {
	db := setupCompanyTestDB(t)
	repo := NewGormCompanyRepository(db)
	ctx := context.Background()

	company, err := identity.NewCompany("acme", "Acme Corp", "Secret1!", false)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, company))

	t.Run("persists flag and hash changes", func(t *testing.T) {
		company.SetEnabled(false)
		plaintext, err := company.ResetPassword()
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, company))

		found, err := repo.FindByID(ctx, "acme")
		require.NoError(t, err)
		assert.False(t, found.IsEnabled)
		assert.True(t, found.VerifyPassword(plaintext))
	})

	t.Run("unknown company reports not found", func(t *testing.T) {
		ghost := *company
		ghost.ID = "ghost"
		err := repo.Update(ctx, &ghost)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCompanyRepository_FindAll(t *testing.T) {
	db := setupCompanyTestDB(t)
	repo := NewGormCompanyRepository(db)
	ctx := context.Background()

	for _, id := range []string{"acme", "globex"} {
		company, err := identity.NewCompany(id, id+" Inc", "Secret1!", false)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, company))
	}

	companies, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}
