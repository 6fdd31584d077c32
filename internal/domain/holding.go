package domain

import "time"

// Holding is a per-account credit balance keyed by (holder, project,
// vintage). Created lazily on first credit; Balance never goes negative.
type Holding struct {
	Holder      string    `gorm:"column:holder;primaryKey" json:"holder"`
	ProjectID   uint64    `gorm:"column:project_id;primaryKey;autoIncrement:false" json:"project_id"`
	VintageYear int       `gorm:"column:vintage_year;primaryKey;autoIncrement:false" json:"vintage_year"`
	Balance     uint64    `gorm:"column:balance;not null;default:0" json:"balance"`
	CreatedAt   time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updatedAt" json:"updatedAt"`
}

func (Holding) TableName() string {
	return "Holdings"
}
