package migration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kyrec/backend/internal/domain/briefing"
	"github.com/kyrec/backend/internal/domain/identity"
	"github.com/kyrec/backend/internal/infrastructure/config"
	"github.com/kyrec/backend/internal/infrastructure/persistence"
	"github.com/kyrec/backend/internal/infrastructure/seeding"
)

// migratedDB builds the schema from the real SQL files, not AutoMigrate, so
// drift between the models and the migrations fails here.
func migratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or every pool checkout would see a fresh empty :memory: db
	sqlDB.SetMaxOpenConns(1)

	migrator, err := New(sqlDB, "sqlite", filepath.Join("..", "..", "..", "migrations"), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, migrator.Up())

	version, dirty, err := migrator.Version()
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), version)

	return db
}

func TestMigrations_SchemaMatchesModels(t *testing.T) {
	db := migratedDB(t)
	ctx := context.Background()

	t.Run("company insert and lookup", func(t *testing.T) {
		companyRepo := persistence.NewGormCompanyRepository(db)
		company, err := identity.NewCompany("acme", "Acme Corp", "Secret1!", false)
		require.NoError(t, err)
		require.NoError(t, companyRepo.Save(ctx, company))

		found, err := companyRepo.FindByID(ctx, "acme")
		require.NoError(t, err)
		assert.True(t, found.VerifyPassword("Secret1!"))
	})

	t.Run("name candidate insert and listing", func(t *testing.T) {
		candidateRepo := persistence.NewGormNameCandidateRepository(db)
		require.NoError(t, candidateRepo.Add(ctx, "acme", "Taro"))

		names, err := candidateRepo.ListByCompany(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, []string{"Taro"}, names)
	})

	t.Run("record insert and round trip", func(t *testing.T) {
		recordRepo := persistence.NewGormRecordRepository(db)
		record, err := briefing.NewRecord("acme", briefing.Form{
			SubmitterName: "Taro",
			WorkTitle:     "配電盤点検",
			Hazards:       briefing.Checklist{Selected: []string{"火災"}},
		})
		require.NoError(t, err)
		require.NoError(t, recordRepo.Insert(ctx, record))

		found, err := recordRepo.FindByID(ctx, "acme", record.ID)
		require.NoError(t, err)
		assert.Equal(t, "配電盤点検", found.WorkTitle)
	})
}

func TestMigrations_SeedingAgainstRealSchema(t *testing.T) {
	db := migratedDB(t)

	seed := `{"companies":[{"id":"acme","name":"Acme Corp","password":"Secret1!","name_candidates":["Taro"]}]}`
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	companyRepo := persistence.NewGormCompanyRepository(db)
	seeder := seeding.NewSeeder(db, companyRepo,
		config.SeedConfig{Path: path, DefaultPassword: "ChangeMe123!"}, zap.NewNop())
	require.NoError(t, seeder.SeedIfEmpty(context.Background()))

	found, err := companyRepo.FindByID(context.Background(), "acme")
	require.NoError(t, err)
	assert.True(t, found.VerifyPassword("Secret1!"))

	var names []string
	require.NoError(t, db.Model(&identity.NameCandidate{}).
		Where("company_id = ?", "acme").
		Pluck("name", &names).Error)
	assert.Equal(t, []string{"Taro"}, names)
}

func TestMigrations_DownDropsSchema(t *testing.T) {
	db := migratedDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	migrator, err := New(sqlDB, "sqlite", filepath.Join("..", "..", "..", "migrations"), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, migrator.Down())

	assert.False(t, db.Migrator().HasTable("companies"))
	assert.False(t, db.Migrator().HasTable("name_candidates"))
	assert.False(t, db.Migrator().HasTable("ky_records"))
}
