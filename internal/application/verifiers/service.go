package verifiers

import (
	"context"
	"errors"
	"time"

	"offsetledger-backend/internal/auth"
	"offsetledger-backend/internal/domain"

	"gorm.io/gorm"
)

// Service is the directory of accounts permitted to verify projects.
type Service struct {
	DB     *gorm.DB
	Admins auth.Policy
}

// Authorize upserts a verifier entry with status active. Admin-gated; a
// verifier cannot be authorized by itself.
func (s *Service) Authorize(ctx context.Context, verifierID, name, credentials, caller string) error {
	if !s.Admins.IsAdmin(caller) {
		return domain.ErrNotAdmin
	}
	if verifierID == caller {
		return domain.ErrSelfAuthorization
	}
	if verifierID == "" || name == "" || credentials == "" {
		return domain.ErrEmptyField
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := domain.Verifier{
			AccountID:    verifierID,
			Name:         name,
			Credentials:  credentials,
			AuthorizedBy: caller,
			AuthorizedAt: time.Now(),
			Status:       domain.VerifierStatusActive,
		}
		var existing domain.Verifier
		err := tx.Where("account_id = ?", verifierID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&entry).Error
		} else if err != nil {
			return err
		}
		existing.Name = name
		existing.Credentials = credentials
		existing.AuthorizedBy = caller
		existing.AuthorizedAt = entry.AuthorizedAt
		existing.Status = domain.VerifierStatusActive
		return tx.Save(&existing).Error
	})
}

// Deactivate flips a verifier to inactive. Admin-gated.
func (s *Service) Deactivate(ctx context.Context, verifierID, caller string) error {
	if !s.Admins.IsAdmin(caller) {
		return domain.ErrNotAdmin
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry domain.Verifier
		if err := tx.Where("account_id = ?", verifierID).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrVerifierNotFound
			}
			return err
		}
		entry.Status = domain.VerifierStatusInactive
		return tx.Save(&entry).Error
	})
}

// IsActive reports whether an active entry exists for verifierID.
func (s *Service) IsActive(ctx context.Context, verifierID string) (bool, error) {
	var entry domain.Verifier
	err := s.DB.WithContext(ctx).Where("account_id = ?", verifierID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return entry.Status == domain.VerifierStatusActive, nil
}

// Get returns a verifier directory entry.
func (s *Service) Get(ctx context.Context, verifierID string) (*domain.Verifier, error) {
	var entry domain.Verifier
	if err := s.DB.WithContext(ctx).Where("account_id = ?", verifierID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVerifierNotFound
		}
		return nil, err
	}
	return &entry, nil
}
