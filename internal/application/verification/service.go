package verification

import (
	"context"
	"errors"

	"offsetledger-backend/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service records third-party verification events against projects.
type Service struct {
	DB *gorm.DB
}

// VerifyInput carries the verifier-supplied attributes for one event.
type VerifyInput struct {
	ProjectID     uint64
	CreditsIssued uint64
	ReportURL     string
	Methodology   string
	PeriodStart   int64
	PeriodEnd     int64
	Evidence      datatypes.JSON // opaque blob, may be nil
}

// Verify appends a verification record and activates the project, issuing
// in.CreditsIssued to its total and available counters. Verification is
// one-shot: the first success moves the project out of pending, and any
// later call fails ErrProjectNotPending. Records stay keyed by a per-project
// sequence so additive multi-round verification remains schema-compatible.
func (s *Service) Verify(ctx context.Context, in VerifyInput, caller string) (uint64, error) {
	if in.PeriodStart > in.PeriodEnd {
		return 0, domain.ErrInvalidPeriod
	}
	if in.CreditsIssued == 0 {
		return 0, domain.ErrZeroCredits
	}
	if in.Methodology == "" {
		return 0, domain.ErrEmptyField
	}

	var seq uint64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project domain.Project
		if err := tx.Where("project_id = ?", in.ProjectID).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProjectNotFound
			}
			return err
		}

		var verifier domain.Verifier
		err := tx.Where("account_id = ?", caller).First(&verifier).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && verifier.Status != domain.VerifierStatusActive) {
			return domain.ErrNotAuthorizedVerifier
		} else if err != nil {
			return err
		}

		if project.Status != domain.ProjectStatusPending {
			return domain.ErrProjectNotPending
		}

		seq = project.VerificationCount
		record := domain.VerificationRecord{
			ProjectID:     project.ProjectID,
			Seq:           seq,
			Verifier:      caller,
			CreditsIssued: in.CreditsIssued,
			ReportURL:     in.ReportURL,
			Methodology:   in.Methodology,
			PeriodStart:   in.PeriodStart,
			PeriodEnd:     in.PeriodEnd,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		project.Verified = true
		project.Status = domain.ProjectStatusActive
		project.VerificationData = in.Evidence
		project.TotalCredits += in.CreditsIssued
		project.AvailableCredits += in.CreditsIssued
		project.VerificationCount++
		return tx.Save(&project).Error
	})
	return seq, err
}

// Get returns one verification record by (project, sequence).
func (s *Service) Get(ctx context.Context, projectID, seq uint64) (*domain.VerificationRecord, error) {
	var record domain.VerificationRecord
	err := s.DB.WithContext(ctx).
		Where("project_id = ? AND seq = ?", projectID, seq).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProjectNotFound
	} else if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByProject returns all verification records for a project in sequence order.
func (s *Service) ListByProject(ctx context.Context, projectID uint64) ([]domain.VerificationRecord, error) {
	var records []domain.VerificationRecord
	if err := s.DB.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("seq ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
