package seeding

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kyrec/backend/internal/domain/identity"
	"github.com/kyrec/backend/internal/infrastructure/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedFile is the declarative bootstrap description consumed exactly once,
// on an empty credential store.
type SeedFile struct {
	Companies []SeedCompany `json:"companies"`
}

// SeedCompany describes one company to create, with an optional initial
// password and the submitter names to pre-register.
type SeedCompany struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Password       string   `json:"password,omitempty"`
	IsAdmin        bool     `json:"is_admin,omitempty"`
	NameCandidates []string `json:"name_candidates,omitempty"`
}

// Seeder populates an empty store from the configured seed description
type Seeder struct {
	db          *gorm.DB
	companyRepo identity.CompanyRepository
	cfg         config.SeedConfig
	logger      *zap.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(db *gorm.DB, companyRepo identity.CompanyRepository, cfg config.SeedConfig, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, companyRepo: companyRepo, cfg: cfg, logger: logger}
}

// SeedIfEmpty populates companies and name candidates when the credential
// store holds zero companies and the seed description exists. An already
// populated store is never overwritten; a missing seed file is not an error.
// The whole batch runs inside one transaction so a crash cannot leave a
// half-seeded store behind.
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	count, err := s.companyRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count companies: %w", err)
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(s.cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("No seed description found, skipping bootstrap",
				zap.String("path", s.cfg.Path))
			return nil
		}
		return fmt.Errorf("failed to read seed description: %w", err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("invalid seed description: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sc := range seed.Companies {
			password := sc.Password
			if password == "" {
				password = s.cfg.DefaultPassword
			}
			company, err := identity.NewCompany(sc.ID, sc.Name, password, sc.IsAdmin)
			if err != nil {
				return fmt.Errorf("invalid seed company %q: %w", sc.ID, err)
			}
			if err := tx.Create(company).Error; err != nil {
				return err
			}

			for _, name := range sc.NameCandidates {
				if name == "" {
					continue
				}
				candidate := identity.NameCandidate{CompanyID: sc.ID, Name: name}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&candidate).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Seeded empty store",
		zap.Int("companies", len(seed.Companies)),
		zap.String("path", s.cfg.Path))
	return nil
}
