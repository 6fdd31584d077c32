package domain

import "time"

// Retirement is the auditable record of credits permanently removed from
// circulation. Immutable except for the one-time certificate URL set by an
// admin. BatchID is informational: holdings do not track the batch credits
// were bought from, so it is recorded as 0 (unknown).
type Retirement struct {
	RetirementID   uint64    `gorm:"column:retirement_id;primaryKey;autoIncrement:false" json:"retirement_id"`
	Account        string    `gorm:"column:account;not null;index" json:"account"`
	ProjectID      uint64    `gorm:"column:project_id;not null" json:"project_id"`
	BatchID        uint64    `gorm:"column:batch_id;not null;default:0" json:"batch_id"`
	VintageYear    int       `gorm:"column:vintage_year;not null" json:"vintage_year"`
	Quantity       uint64    `gorm:"column:quantity;not null" json:"quantity"`
	Reason         string    `gorm:"column:reason;type:text;not null" json:"reason"`
	Beneficiary    *string   `gorm:"column:beneficiary" json:"beneficiary"`
	CertificateURL *string   `gorm:"column:certificate_url" json:"certificate_url"`
	CreatedAt      time.Time `gorm:"column:createdAt" json:"createdAt"`
}

func (Retirement) TableName() string {
	return "Retirements"
}
