package verification

import (
	"context"
	"testing"
	"time"

	"offsetledger-backend/internal/domain"
	"offsetledger-backend/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupVerification(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return &Service{DB: db}
}

func seedPendingProject(t *testing.T, db *gorm.DB, id uint64) {
	require.NoError(t, db.Create(&domain.Project{
		ProjectID: id,
		Name:      "Windfarm Alpha",
		Location:  "North Sea",
		Category:  domain.CategoryRenewableEnergy,
		Owner:     "owner-1",
		Status:    domain.ProjectStatusPending,
		StartAt:   100,
		EndAt:     200,
	}).Error)
}

func seedVerifier(t *testing.T, db *gorm.DB, account string, status domain.VerifierStatus) {
	require.NoError(t, db.Create(&domain.Verifier{
		AccountID:    account,
		Name:         "DNV",
		Credentials:  "ISO 14065",
		AuthorizedBy: "admin-1",
		AuthorizedAt: time.Now(),
		Status:       status,
	}).Error)
}

func validVerify() VerifyInput {
	return VerifyInput{
		ProjectID:     0,
		CreditsIssued: 1000,
		ReportURL:     "https://reports.example/0",
		Methodology:   "VM0042",
		PeriodStart:   100,
		PeriodEnd:     150,
	}
}

func TestVerify_IssuesCreditsAndActivates(t *testing.T) {
	s := setupVerification(t)
	ctx := context.Background()
	seedPendingProject(t, s.DB, 0)
	seedVerifier(t, s.DB, "verifier-1", domain.VerifierStatusActive)

	in := validVerify()
	in.Evidence = datatypes.JSON(`{"satellite_pass":"2024-06-01"}`)
	seq, err := s.Verify(ctx, in, "verifier-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), seq)

	var project domain.Project
	require.NoError(t, s.DB.Where("project_id = ?", 0).First(&project).Error)
	assert.True(t, project.Verified)
	assert.Equal(t, domain.ProjectStatusActive, project.Status)
	assert.Equal(t, uint64(1000), project.TotalCredits)
	assert.Equal(t, uint64(1000), project.AvailableCredits)
	assert.JSONEq(t, `{"satellite_pass":"2024-06-01"}`, string(project.VerificationData))

	record, err := s.Get(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "verifier-1", record.Verifier)
	assert.Equal(t, uint64(1000), record.CreditsIssued)
	assert.Equal(t, "VM0042", record.Methodology)
}

func TestVerify_IsOneShot(t *testing.T) {
	s := setupVerification(t)
	ctx := context.Background()
	seedPendingProject(t, s.DB, 0)
	seedVerifier(t, s.DB, "verifier-1", domain.VerifierStatusActive)

	_, err := s.Verify(ctx, validVerify(), "verifier-1")
	require.NoError(t, err)

	_, err = s.Verify(ctx, validVerify(), "verifier-1")
	assert.ErrorIs(t, err, domain.ErrProjectNotPending)

	// The failed second attempt must not touch the counters.
	var project domain.Project
	require.NoError(t, s.DB.Where("project_id = ?", 0).First(&project).Error)
	assert.Equal(t, uint64(1000), project.TotalCredits)
	assert.Equal(t, uint64(1000), project.AvailableCredits)

	records, err := s.ListByProject(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestVerify_RequiresActiveVerifier(t *testing.T) {
	s := setupVerification(t)
	ctx := context.Background()
	seedPendingProject(t, s.DB, 0)

	_, err := s.Verify(ctx, validVerify(), "stranger")
	assert.ErrorIs(t, err, domain.ErrNotAuthorizedVerifier)

	seedVerifier(t, s.DB, "verifier-2", domain.VerifierStatusInactive)
	_, err = s.Verify(ctx, validVerify(), "verifier-2")
	assert.ErrorIs(t, err, domain.ErrNotAuthorizedVerifier)
}

func TestVerify_Validation(t *testing.T) {
	s := setupVerification(t)
	ctx := context.Background()
	seedPendingProject(t, s.DB, 0)
	seedVerifier(t, s.DB, "verifier-1", domain.VerifierStatusActive)

	in := validVerify()
	in.PeriodStart, in.PeriodEnd = 200, 100
	_, err := s.Verify(ctx, in, "verifier-1")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	in = validVerify()
	in.CreditsIssued = 0
	_, err = s.Verify(ctx, in, "verifier-1")
	assert.ErrorIs(t, err, domain.ErrZeroCredits)

	in = validVerify()
	in.Methodology = ""
	_, err = s.Verify(ctx, in, "verifier-1")
	assert.ErrorIs(t, err, domain.ErrEmptyField)

	in = validVerify()
	in.ProjectID = 42
	_, err = s.Verify(ctx, in, "verifier-1")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
