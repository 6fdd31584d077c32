package batches

import (
	"context"
	"errors"

	"offsetledger-backend/internal/domain"

	"gorm.io/gorm"
)

// Service carves verified, unsold project credits into sellable lots.
type Service struct {
	DB *gorm.DB
}

// CreateInput carries the owner-supplied batch attributes.
type CreateInput struct {
	ProjectID   uint64
	VintageYear int
	Quantity    uint64
	UnitPrice   uint64
}

// Create allocates the next batch ID and moves in.Quantity credits from the
// project's available pool into the new lot. Owner-gated; the project must
// be verified and active.
func (s *Service) Create(ctx context.Context, in CreateInput, caller string) (uint64, error) {
	if in.Quantity == 0 {
		return 0, domain.ErrInvalidQuantity
	}
	if in.UnitPrice == 0 {
		return 0, domain.ErrInvalidPrice
	}
	if in.VintageYear < domain.MinVintageYear {
		return 0, domain.ErrInvalidVintage
	}

	var id uint64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project domain.Project
		if err := tx.Where("project_id = ?", in.ProjectID).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProjectNotFound
			}
			return err
		}
		if project.Owner != caller {
			return domain.ErrNotOwner
		}
		if !project.Verified {
			return domain.ErrProjectNotVerified
		}
		if project.Status != domain.ProjectStatusActive {
			return domain.ErrProjectInactive
		}
		if project.AvailableCredits < in.Quantity {
			return domain.ErrInsufficientCredits
		}

		var err error
		id, err = domain.NextID(tx, domain.CounterBatches)
		if err != nil {
			return err
		}
		batch := domain.CreditBatch{
			BatchID:     id,
			ProjectID:   project.ProjectID,
			VintageYear: in.VintageYear,
			Quantity:    in.Quantity,
			Remaining:   in.Quantity,
			UnitPrice:   in.UnitPrice,
			Status:      domain.BatchStatusAvailable,
		}
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}

		project.AvailableCredits -= in.Quantity
		return tx.Save(&project).Error
	})
	return id, err
}

// Get returns a batch snapshot.
func (s *Service) Get(ctx context.Context, batchID uint64) (*domain.CreditBatch, error) {
	var batch domain.CreditBatch
	if err := s.DB.WithContext(ctx).Where("batch_id = ?", batchID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBatchNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// ListByProject returns all batches carved from a project, oldest first.
func (s *Service) ListByProject(ctx context.Context, projectID uint64) ([]domain.CreditBatch, error) {
	var out []domain.CreditBatch
	if err := s.DB.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("batch_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
