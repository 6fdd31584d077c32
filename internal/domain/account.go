package domain

import "time"

// Account is a value-ledger balance used to settle purchases. It stands in
// for the external value-transfer collaborator and is moved atomically
// inside the purchase transaction.
type Account struct {
	AccountID string    `gorm:"column:account_id;primaryKey" json:"account_id"`
	Balance   uint64    `gorm:"column:balance;not null;default:0" json:"balance"`
	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`
}

func (Account) TableName() string {
	return "Accounts"
}
