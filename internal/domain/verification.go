package domain

import "time"

// VerificationRecord is an immutable third-party verification event, keyed
// by (project, per-project sequence). Never updated or deleted once written.
type VerificationRecord struct {
	ProjectID     uint64    `gorm:"column:project_id;primaryKey;autoIncrement:false" json:"project_id"`
	Seq           uint64    `gorm:"column:seq;primaryKey;autoIncrement:false" json:"seq"`
	Verifier      string    `gorm:"column:verifier;not null" json:"verifier"`
	CreditsIssued uint64    `gorm:"column:credits_issued;not null" json:"credits_issued"`
	ReportURL     string    `gorm:"column:report_url" json:"report_url"`
	Methodology   string    `gorm:"column:methodology;not null" json:"methodology"`
	PeriodStart   int64     `gorm:"column:period_start;not null" json:"period_start"`
	PeriodEnd     int64     `gorm:"column:period_end;not null" json:"period_end"`
	CreatedAt     time.Time `gorm:"column:createdAt" json:"createdAt"`
}

func (VerificationRecord) TableName() string {
	return "VerificationRecords"
}
