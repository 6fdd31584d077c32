package domain

import "time"

// VerifierStatus is the directory status for an authorized verifier.
type VerifierStatus string

const (
	VerifierStatusActive   VerifierStatus = "active"
	VerifierStatusInactive VerifierStatus = "inactive"
)

// Verifier is an account authorized by an admin to verify projects.
type Verifier struct {
	AccountID    string         `gorm:"column:account_id;primaryKey" json:"account_id"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	Credentials  string         `gorm:"column:credentials;type:text;not null" json:"credentials"`
	AuthorizedBy string         `gorm:"column:authorized_by;not null" json:"authorized_by"`
	AuthorizedAt time.Time      `gorm:"column:authorized_at;not null" json:"authorized_at"`
	Status       VerifierStatus `gorm:"column:status;type:varchar(16);not null;default:'active'" json:"status"`
	CreatedAt    time.Time      `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"column:updatedAt" json:"updatedAt"`
}

func (Verifier) TableName() string {
	return "Verifiers"
}
