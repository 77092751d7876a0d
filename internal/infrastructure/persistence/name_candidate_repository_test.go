package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kyrec/backend/internal/domain/identity"
)

func setupCandidateTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&identity.NameCandidate{})
	require.NoError(t, err)

	return db
}

func TestNameCandidateRepository_Add(t *testing.T) {
	db := setupCandidateTestDB(t)
	repo := NewGormNameCandidateRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "acme", "Taro"))

	t.Run("duplicate pair is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "acme", "Taro"))

		names, err := repo.ListByCompany(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, []string{"Taro"}, names)
	})

	t.Run("empty name is ignored", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "acme", "  "))

		names, err := repo.ListByCompany(ctx, "acme")
		require.NoError(t, err)
		assert.Len(t, names, 1)
	})

	t.Run("same name for another company is a distinct pair", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, "globex", "Taro"))

		names, err := repo.ListByCompany(ctx, "globex")
		require.NoError(t, err)
		assert.Equal(t, []string{"Taro"}, names)
	})
}

func TestNameCandidateRepository_ListByCompany(t *testing.T) {
	db := setupCandidateTestDB(t)
	repo := NewGormNameCandidateRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Suzuki", "Abe", "Tanaka"} {
		require.NoError(t, repo.Add(ctx, "acme", name))
	}

	names, err := repo.ListByCompany(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"Abe", "Suzuki", "Tanaka"}, names)

	t.Run("unknown company yields empty list", func(t *testing.T) {
		names, err := repo.ListByCompany(ctx, "none")
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
