package verifiers

import (
	"context"
	"testing"

	"offsetledger-backend/internal/auth"
	"offsetledger-backend/internal/domain"
	"offsetledger-backend/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupVerifiers(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return &Service{DB: db, Admins: auth.NewConfigAdmins([]string{"admin-1"})}
}

func TestAuthorize_Success(t *testing.T) {
	s := setupVerifiers(t)
	ctx := context.Background()

	require.NoError(t, s.Authorize(ctx, "verifier-1", "Det Norske Veritas", "ISO 14065", "admin-1"))

	entry, err := s.Get(ctx, "verifier-1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerifierStatusActive, entry.Status)
	assert.Equal(t, "admin-1", entry.AuthorizedBy)
	assert.False(t, entry.AuthorizedAt.IsZero())

	active, err := s.IsActive(ctx, "verifier-1")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestAuthorize_Gates(t *testing.T) {
	s := setupVerifiers(t)
	ctx := context.Background()

	err := s.Authorize(ctx, "verifier-1", "DNV", "ISO 14065", "not-admin")
	assert.ErrorIs(t, err, domain.ErrNotAdmin)

	err = s.Authorize(ctx, "admin-1", "DNV", "ISO 14065", "admin-1")
	assert.ErrorIs(t, err, domain.ErrSelfAuthorization)

	err = s.Authorize(ctx, "verifier-1", "", "ISO 14065", "admin-1")
	assert.ErrorIs(t, err, domain.ErrEmptyField)

	err = s.Authorize(ctx, "verifier-1", "DNV", "", "admin-1")
	assert.ErrorIs(t, err, domain.ErrEmptyField)

	err = s.Authorize(ctx, "", "DNV", "ISO 14065", "admin-1")
	assert.ErrorIs(t, err, domain.ErrEmptyField)
}

func TestIsActive_UnknownVerifier(t *testing.T) {
	s := setupVerifiers(t)
	active, err := s.IsActive(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestDeactivate_ThenReauthorize(t *testing.T) {
	s := setupVerifiers(t)
	ctx := context.Background()

	require.NoError(t, s.Authorize(ctx, "verifier-1", "DNV", "ISO 14065", "admin-1"))
	require.NoError(t, s.Deactivate(ctx, "verifier-1", "admin-1"))

	active, err := s.IsActive(ctx, "verifier-1")
	require.NoError(t, err)
	assert.False(t, active)

	// Re-authorization flips the same entry back to active
	require.NoError(t, s.Authorize(ctx, "verifier-1", "DNV", "ISO 14065 renewal", "admin-1"))
	active, err = s.IsActive(ctx, "verifier-1")
	require.NoError(t, err)
	assert.True(t, active)

	entry, err := s.Get(ctx, "verifier-1")
	require.NoError(t, err)
	assert.Equal(t, "ISO 14065 renewal", entry.Credentials)
}

func TestDeactivate_Gates(t *testing.T) {
	s := setupVerifiers(t)
	ctx := context.Background()

	err := s.Deactivate(ctx, "verifier-1", "not-admin")
	assert.ErrorIs(t, err, domain.ErrNotAdmin)

	err = s.Deactivate(ctx, "verifier-1", "admin-1")
	assert.ErrorIs(t, err, domain.ErrVerifierNotFound)
}
