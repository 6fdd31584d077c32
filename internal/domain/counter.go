package domain

import (
	"errors"

	"gorm.io/gorm"
)

// Counter names, one row per entity type. IDs are monotonic from 0.
const (
	CounterProjects    = "projects"
	CounterBatches     = "batches"
	CounterRetirements = "retirements"
)

// Counter holds the next unassigned ID for an entity type.
type Counter struct {
	Name string `gorm:"column:name;primaryKey" json:"name"`
	Next uint64 `gorm:"column:next;not null;default:0" json:"next"`
}

func (Counter) TableName() string {
	return "Counters"
}

// NextID allocates the next ID for name inside tx. The read-modify-write is
// safe because every mutating operation runs in its own transaction and the
// host serializes writes.
func NextID(tx *gorm.DB, name string) (uint64, error) {
	var c Counter
	err := tx.Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = Counter{Name: name, Next: 0}
		if err := tx.Create(&c).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}
	id := c.Next
	if err := tx.Model(&Counter{}).Where("name = ?", name).Update("next", id+1).Error; err != nil {
		return 0, err
	}
	return id, nil
}
