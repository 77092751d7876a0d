package identity

// NameCandidate is a previously used submitter name for a company.
// The (company, name) pair is unique and the set is append-only.
type NameCandidate struct {
	CompanyID string `gorm:"type:varchar(50);primaryKey"`
	Name      string `gorm:"type:varchar(100);primaryKey"`
}

// TableName returns the table name for GORM
func (NameCandidate) TableName() string {
	return "name_candidates"
}
