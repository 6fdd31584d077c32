package batches

import (
	"context"
	"testing"

	"offsetledger-backend/internal/domain"
	"offsetledger-backend/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBatches(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return &Service{DB: db}
}

func seedVerifiedProject(t *testing.T, db *gorm.DB, id, available uint64) {
	require.NoError(t, db.Create(&domain.Project{
		ProjectID:        id,
		Name:             "Windfarm Alpha",
		Location:         "North Sea",
		Category:         domain.CategoryRenewableEnergy,
		Owner:            "owner-1",
		Status:           domain.ProjectStatusActive,
		Verified:         true,
		TotalCredits:     available,
		AvailableCredits: available,
		StartAt:          100,
		EndAt:            200,
	}).Error)
}

func validCreate() CreateInput {
	return CreateInput{ProjectID: 0, VintageYear: 2024, Quantity: 400, UnitPrice: 10}
}

func TestCreate_CarvesBatchFromAvailable(t *testing.T) {
	s := setupBatches(t)
	ctx := context.Background()
	seedVerifiedProject(t, s.DB, 0, 1000)

	id, err := s.Create(ctx, validCreate(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)

	batch, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), batch.Quantity)
	assert.Equal(t, uint64(400), batch.Remaining)
	assert.Equal(t, uint64(10), batch.UnitPrice)
	assert.Equal(t, 2024, batch.VintageYear)
	assert.Equal(t, domain.BatchStatusAvailable, batch.Status)

	var project domain.Project
	require.NoError(t, s.DB.Where("project_id = ?", 0).First(&project).Error)
	assert.Equal(t, uint64(600), project.AvailableCredits)
	assert.Equal(t, uint64(1000), project.TotalCredits)
}

func TestCreate_IDsAreMonotonic(t *testing.T) {
	s := setupBatches(t)
	ctx := context.Background()
	seedVerifiedProject(t, s.DB, 0, 1000)

	for want := uint64(0); want < 3; want++ {
		in := validCreate()
		in.Quantity = 100
		id, err := s.Create(ctx, in, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestCreate_RejectsOverAllocation(t *testing.T) {
	s := setupBatches(t)
	ctx := context.Background()
	seedVerifiedProject(t, s.DB, 0, 300)

	in := validCreate() // 400 > 300 available
	_, err := s.Create(ctx, in, "owner-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)

	// Rejection leaves the pool untouched, no clamping.
	var project domain.Project
	require.NoError(t, s.DB.Where("project_id = ?", 0).First(&project).Error)
	assert.Equal(t, uint64(300), project.AvailableCredits)

	lots, err := s.ListByProject(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, lots)
}

func TestCreate_Gates(t *testing.T) {
	s := setupBatches(t)
	ctx := context.Background()
	seedVerifiedProject(t, s.DB, 0, 1000)

	_, err := s.Create(ctx, validCreate(), "not-owner")
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	in := validCreate()
	in.ProjectID = 42
	_, err = s.Create(ctx, in, "owner-1")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	require.NoError(t, s.DB.Create(&domain.Project{
		ProjectID: 1,
		Name:      "Mangrove Beta",
		Location:  "Sundarbans",
		Category:  domain.CategoryBlueCarbon,
		Owner:     "owner-1",
		Status:    domain.ProjectStatusPending,
		StartAt:   100,
		EndAt:     200,
	}).Error)
	in = validCreate()
	in.ProjectID = 1
	_, err = s.Create(ctx, in, "owner-1")
	assert.ErrorIs(t, err, domain.ErrProjectNotVerified)
}

func TestCreate_Validation(t *testing.T) {
	s := setupBatches(t)
	ctx := context.Background()

	in := validCreate()
	in.Quantity = 0
	_, err := s.Create(ctx, in, "owner-1")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	in = validCreate()
	in.UnitPrice = 0
	_, err = s.Create(ctx, in, "owner-1")
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	in = validCreate()
	in.VintageYear = 2019
	_, err = s.Create(ctx, in, "owner-1")
	assert.ErrorIs(t, err, domain.ErrInvalidVintage)
}

func TestGet_NotFound(t *testing.T) {
	s := setupBatches(t)
	_, err := s.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
}
