package credits

import (
	"context"
	"testing"

	"offsetledger-backend/internal/application/payments"
	"offsetledger-backend/internal/domain"
	"offsetledger-backend/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCredits(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return &Service{DB: db, Gateway: &payments.Service{DB: db}}
}

func seedMarket(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&domain.Project{
		ProjectID:        0,
		Name:             "Windfarm Alpha",
		Location:         "North Sea",
		Category:         domain.CategoryRenewableEnergy,
		Owner:            "owner-1",
		Status:           domain.ProjectStatusActive,
		Verified:         true,
		TotalCredits:     1000,
		AvailableCredits: 600,
		StartAt:          100,
		EndAt:            200,
	}).Error)
	require.NoError(t, db.Create(&domain.CreditBatch{
		BatchID:     0,
		ProjectID:   0,
		VintageYear: 2024,
		Quantity:    400,
		Remaining:   400,
		UnitPrice:   10,
		Status:      domain.BatchStatusAvailable,
	}).Error)
}

func fund(t *testing.T, db *gorm.DB, account string, amount uint64) {
	require.NoError(t, db.Create(&domain.Account{AccountID: account, Balance: amount}).Error)
}

func TestPurchase_MovesCreditsAndValue(t *testing.T) {
	s := setupCredits(t)
	ctx := context.Background()
	seedMarket(t, s.DB)
	fund(t, s.DB, "buyer-1", 2000)

	require.NoError(t, s.Purchase(ctx, 0, 150, "buyer-1"))

	balance, err := s.Balance(ctx, "buyer-1", 0, 2024)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), balance)

	var batch domain.CreditBatch
	require.NoError(t, s.DB.Where("batch_id = ?", 0).First(&batch).Error)
	assert.Equal(t, uint64(250), batch.Remaining)
	assert.Equal(t, domain.BatchStatusAvailable, batch.Status)

	// 150 units at price 10 settle to the project owner.
	var buyer, owner domain.Account
	require.NoError(t, s.DB.Where("account_id = ?", "buyer-1").First(&buyer).Error)
	require.NoError(t, s.DB.Where("account_id = ?", "owner-1").First(&owner).Error)
	assert.Equal(t, uint64(500), buyer.Balance)
	assert.Equal(t, uint64(1500), owner.Balance)
}

func TestPurchase_SellsOutBatch(t *testing.T) {
	s := setupCredits(t)
	ctx := context.Background()
	seedMarket(t, s.DB)
	fund(t, s.DB, "buyer-1", 4000)

	require.NoError(t, s.Purchase(ctx, 0, 400, "buyer-1"))

	var batch domain.CreditBatch
	require.NoError(t, s.DB.Where("batch_id = ?", 0).First(&batch).Error)
	assert.Equal(t, uint64(0), batch.Remaining)
	assert.Equal(t, domain.BatchStatusSold, batch.Status)

	err := s.Purchase(ctx, 0, 1, "buyer-1")
	assert.ErrorIs(t, err, domain.ErrBatchNotAvailable)
}

func TestPurchase_RejectsOverdraw(t *testing.T) {
	s := setupCredits(t)
	ctx := context.Background()
	seedMarket(t, s.DB)
	fund(t, s.DB, "buyer-1", 100000)

	err := s.Purchase(ctx, 0, 401, "buyer-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientRemaining)

	var batch domain.CreditBatch
	require.NoError(t, s.DB.Where("batch_id = ?", 0).First(&batch).Error)
	assert.Equal(t, uint64(400), batch.Remaining)
}

func TestPurchase_PaymentFailureLeavesNoTrace(t *testing.T) {
	s := setupCredits(t)
	ctx := context.Background()
	seedMarket(t, s.DB)
	// buyer-1 has no account, so the gateway refuses the transfer

	err := s.Purchase(ctx, 0, 150, "buyer-1")
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)

	var batch domain.CreditBatch
	require.NoError(t, s.DB.Where("batch_id = ?", 0).First(&batch).Error)
	assert.Equal(t, uint64(400), batch.Remaining)

	balance, err := s.Balance(ctx, "buyer-1", 0, 2024)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}

func TestPurchase_UnknownBatch(t *testing.T) {
	s := setupCredits(t)
	err := s.Purchase(context.Background(), 99, 1, "buyer-1")
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)

	err = s.Purchase(context.Background(), 0, 0, "buyer-1")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestTransfer_MovesHolding(t *testing.T) {
	s := setupCredits(t)
	ctx := context.Background()
	require.NoError(t, s.DB.Create(&domain.Holding{
		Holder: "alice", ProjectID: 0, VintageYear: 2024, Balance: 100,
	}).Error)

	require.NoError(t, s.Transfer(ctx, 0, 2024, "bob", 40, "alice"))

	a, err := s.Balance(ctx, "alice", 0, 2024)
	require.NoError(t, err)
	b, err := s.Balance(ctx, "bob", 0, 2024)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), a)
	assert.Equal(t, uint64(40), b)
}

func TestTransfer_Rejections(t *testing.T) {
	s := setupCredits(t)
	ctx := context.Background()
	require.NoError(t, s.DB.Create(&domain.Holding{
		Holder: "alice", ProjectID: 0, VintageYear: 2024, Balance: 100,
	}).Error)

	err := s.Transfer(ctx, 0, 2024, "bob", 101, "alice")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	err = s.Transfer(ctx, 0, 2024, "bob", 10, "carol")
	assert.ErrorIs(t, err, domain.ErrNoHolding)

	// Vintages are distinct assets: no 2023 holding exists.
	err = s.Transfer(ctx, 0, 2023, "bob", 10, "alice")
	assert.ErrorIs(t, err, domain.ErrNoHolding)

	a, err := s.Balance(ctx, "alice", 0, 2024)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), a)
}

func TestBalance_ZeroWithoutHolding(t *testing.T) {
	s := setupCredits(t)
	balance, err := s.Balance(context.Background(), "nobody", 7, 2024)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}

func TestListHoldings(t *testing.T) {
	s := setupCredits(t)
	ctx := context.Background()
	require.NoError(t, s.DB.Create(&domain.Holding{Holder: "alice", ProjectID: 0, VintageYear: 2024, Balance: 10}).Error)
	require.NoError(t, s.DB.Create(&domain.Holding{Holder: "alice", ProjectID: 1, VintageYear: 2025, Balance: 20}).Error)
	require.NoError(t, s.DB.Create(&domain.Holding{Holder: "bob", ProjectID: 0, VintageYear: 2024, Balance: 5}).Error)

	holdings, err := s.ListHoldings(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, holdings, 2)
	assert.Equal(t, uint64(0), holdings[0].ProjectID)
	assert.Equal(t, uint64(1), holdings[1].ProjectID)
}
