package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectStatus is the project lifecycle state. Transitions only move
// forward: pending -> active (via verification), never back.
type ProjectStatus string

const (
	ProjectStatusPending   ProjectStatus = "pending"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusSuspended ProjectStatus = "suspended"
)

// Category is one of the fixed set of offset project categories.
type Category string

const (
	CategoryRenewableEnergy  Category = "renewable-energy"
	CategoryReforestation    Category = "reforestation"
	CategoryEnergyEfficiency Category = "energy-efficiency"
	CategoryMethaneCapture   Category = "methane-capture"
	CategorySoilCarbon       Category = "soil-carbon"
	CategoryBlueCarbon       Category = "blue-carbon"
)

var categories = map[Category]bool{
	CategoryRenewableEnergy:  true,
	CategoryReforestation:    true,
	CategoryEnergyEfficiency: true,
	CategoryMethaneCapture:   true,
	CategorySoilCarbon:       true,
	CategoryBlueCarbon:       true,
}

// ValidCategory reports whether c is a member of the fixed category set.
func ValidCategory(c Category) bool {
	return categories[c]
}

// Project is an offset project owned by the registering account.
// Invariant: TotalCredits = AvailableCredits + RetiredCredits + the summed
// quantity of all batches carved from this project.
type Project struct {
	ProjectID         uint64         `gorm:"column:project_id;primaryKey;autoIncrement:false" json:"project_id"`
	Name              string         `gorm:"column:name;not null" json:"name"`
	Description       string         `gorm:"column:description;type:text" json:"description"`
	Location          string         `gorm:"column:location;not null" json:"location"`
	Category          Category       `gorm:"column:category;type:varchar(32);not null" json:"category"`
	StartAt           int64          `gorm:"column:start_at;not null" json:"start_at"`
	EndAt             int64          `gorm:"column:end_at;not null" json:"end_at"`
	Owner             string         `gorm:"column:owner;not null;index" json:"owner"`
	Status            ProjectStatus  `gorm:"column:status;type:varchar(16);not null;default:'pending'" json:"status"`
	Verified          bool           `gorm:"column:verified;not null;default:false" json:"verified"`
	TotalCredits      uint64         `gorm:"column:total_credits;not null;default:0" json:"total_credits"`
	AvailableCredits  uint64         `gorm:"column:available_credits;not null;default:0" json:"available_credits"`
	RetiredCredits    uint64         `gorm:"column:retired_credits;not null;default:0" json:"retired_credits"`
	VerificationData  datatypes.JSON `gorm:"column:verification_data" json:"verification_data,omitempty"`
	VerificationCount uint64         `gorm:"column:verification_count;not null;default:0" json:"verification_count"`
	RegistryURL       string         `gorm:"column:registry_url" json:"registry_url"`
	CreatedAt         time.Time      `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"column:updatedAt" json:"updatedAt"`
}

func (Project) TableName() string {
	return "Projects"
}
