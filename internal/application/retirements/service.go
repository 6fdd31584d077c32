package retirements

import (
	"context"
	"errors"

	"offsetledger-backend/internal/auth"
	"offsetledger-backend/internal/domain"

	"gorm.io/gorm"
)

// Service permanently removes credits from circulation and records the
// auditable offset event.
type Service struct {
	DB     *gorm.DB
	Admins auth.Policy
}

// RetireInput carries the caller-supplied retirement attributes.
type RetireInput struct {
	ProjectID   uint64
	VintageYear int
	Quantity    uint64
	Reason      string
	Beneficiary *string
}

// Retire debits the caller's holding, bumps the project's retired counter
// and appends an immutable retirement record (no certificate yet). Holdings
// don't track batch provenance, so the record's batch ID stays 0 (unknown).
func (s *Service) Retire(ctx context.Context, in RetireInput, caller string) (uint64, error) {
	if in.Quantity == 0 {
		return 0, domain.ErrInvalidQuantity
	}
	if in.Reason == "" {
		return 0, domain.ErrEmptyReason
	}
	if in.Beneficiary != nil && *in.Beneficiary == caller {
		return 0, domain.ErrSelfBeneficiary
	}

	var id uint64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var holding domain.Holding
		err := tx.Where("holder = ? AND project_id = ? AND vintage_year = ?", caller, in.ProjectID, in.VintageYear).
			First(&holding).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoHolding
		} else if err != nil {
			return err
		}
		if holding.Balance < in.Quantity {
			return domain.ErrInsufficientBalance
		}

		var project domain.Project
		if err := tx.Where("project_id = ?", in.ProjectID).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProjectNotFound
			}
			return err
		}

		holding.Balance -= in.Quantity
		if err := tx.Save(&holding).Error; err != nil {
			return err
		}

		project.RetiredCredits += in.Quantity
		if err := tx.Save(&project).Error; err != nil {
			return err
		}

		id, err = domain.NextID(tx, domain.CounterRetirements)
		if err != nil {
			return err
		}
		record := domain.Retirement{
			RetirementID: id,
			Account:      caller,
			ProjectID:    in.ProjectID,
			BatchID:      0,
			VintageYear:  in.VintageYear,
			Quantity:     in.Quantity,
			Reason:       in.Reason,
			Beneficiary:  in.Beneficiary,
		}
		return tx.Create(&record).Error
	})
	return id, err
}

// IssueCertificate sets the certificate URL exactly once. Admin-gated; a
// second call always fails, it is not an idempotent retry.
func (s *Service) IssueCertificate(ctx context.Context, retirementID uint64, url, caller string) error {
	if !s.Admins.IsAdmin(caller) {
		return domain.ErrNotAdmin
	}
	if url == "" {
		return domain.ErrEmptyURL
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record domain.Retirement
		if err := tx.Where("retirement_id = ?", retirementID).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRetirementNotFound
			}
			return err
		}
		if record.CertificateURL != nil {
			return domain.ErrCertificateAlreadySet
		}
		record.CertificateURL = &url
		return tx.Save(&record).Error
	})
}

// Get returns a retirement record.
func (s *Service) Get(ctx context.Context, retirementID uint64) (*domain.Retirement, error) {
	var record domain.Retirement
	if err := s.DB.WithContext(ctx).Where("retirement_id = ?", retirementID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRetirementNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListByAccount returns an account's retirement records, newest first.
func (s *Service) ListByAccount(ctx context.Context, account string) ([]domain.Retirement, error) {
	var records []domain.Retirement
	if err := s.DB.WithContext(ctx).
		Where("account = ?", account).
		Order("retirement_id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
