package domain

import "time"

// BatchStatus tracks whether a batch still has credits for sale.
type BatchStatus string

const (
	BatchStatusAvailable BatchStatus = "available"
	BatchStatusSold      BatchStatus = "sold"
)

// MinVintageYear is the oldest vintage the registry accepts.
const MinVintageYear = 2020

// CreditBatch is a sellable lot carved from a verified project's available
// credits. Invariant: 0 <= Remaining <= Quantity; Status is sold exactly
// when Remaining reaches zero.
type CreditBatch struct {
	BatchID     uint64      `gorm:"column:batch_id;primaryKey;autoIncrement:false" json:"batch_id"`
	ProjectID   uint64      `gorm:"column:project_id;not null;index" json:"project_id"`
	VintageYear int         `gorm:"column:vintage_year;not null" json:"vintage_year"`
	Quantity    uint64      `gorm:"column:quantity;not null" json:"quantity"`
	Remaining   uint64      `gorm:"column:remaining;not null" json:"remaining"`
	UnitPrice   uint64      `gorm:"column:unit_price;not null" json:"unit_price"`
	Status      BatchStatus `gorm:"column:status;type:varchar(16);not null;default:'available'" json:"status"`
	CreatedAt   time.Time   `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"column:updatedAt" json:"updatedAt"`
}

func (CreditBatch) TableName() string {
	return "CreditBatches"
}
