package credits

import (
	"context"
	"errors"
	"fmt"

	"offsetledger-backend/internal/application/payments"
	"offsetledger-backend/internal/domain"

	"gorm.io/gorm"
)

// Service holds per-account credit balances keyed by (project, vintage).
type Service struct {
	DB      *gorm.DB
	Gateway payments.Gateway
}

// Purchase buys quantity units from a batch. The value transfer to the
// project owner and the ledger mutation commit or abort as one unit; a
// payment failure leaves no partial state.
func (s *Service) Purchase(ctx context.Context, batchID, quantity uint64, buyer string) error {
	if quantity == 0 {
		return domain.ErrInvalidQuantity
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var batch domain.CreditBatch
		if err := tx.Where("batch_id = ?", batchID).First(&batch).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBatchNotFound
			}
			return err
		}
		if batch.Status != domain.BatchStatusAvailable {
			return domain.ErrBatchNotAvailable
		}
		if batch.Remaining < quantity {
			return domain.ErrInsufficientRemaining
		}

		var project domain.Project
		if err := tx.Where("project_id = ?", batch.ProjectID).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProjectNotFound
			}
			return err
		}

		if err := s.Gateway.Transfer(tx, buyer, project.Owner, quantity*batch.UnitPrice); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
		}

		batch.Remaining -= quantity
		if batch.Remaining == 0 {
			batch.Status = domain.BatchStatusSold
		}
		if err := tx.Save(&batch).Error; err != nil {
			return err
		}

		return creditHolding(tx, buyer, batch.ProjectID, batch.VintageYear, quantity)
	})
}

// Transfer moves quantity units of (project, vintage) from sender to
// recipient, creating the recipient holding if absent.
func (s *Service) Transfer(ctx context.Context, projectID uint64, vintageYear int, recipient string, quantity uint64, sender string) error {
	if quantity == 0 {
		return domain.ErrInvalidQuantity
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from domain.Holding
		err := tx.Where("holder = ? AND project_id = ? AND vintage_year = ?", sender, projectID, vintageYear).
			First(&from).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoHolding
		} else if err != nil {
			return err
		}
		if from.Balance < quantity {
			return domain.ErrInsufficientBalance
		}

		from.Balance -= quantity
		if err := tx.Save(&from).Error; err != nil {
			return err
		}
		return creditHolding(tx, recipient, projectID, vintageYear, quantity)
	})
}

// Balance returns the holder's balance for (project, vintage), zero when no
// holding exists. Never fails on absence.
func (s *Service) Balance(ctx context.Context, holder string, projectID uint64, vintageYear int) (uint64, error) {
	var holding domain.Holding
	err := s.DB.WithContext(ctx).
		Where("holder = ? AND project_id = ? AND vintage_year = ?", holder, projectID, vintageYear).
		First(&holding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return holding.Balance, nil
}

// ListHoldings returns all of a holder's holdings.
func (s *Service) ListHoldings(ctx context.Context, holder string) ([]domain.Holding, error) {
	var holdings []domain.Holding
	if err := s.DB.WithContext(ctx).
		Where("holder = ?", holder).
		Order("project_id ASC, vintage_year ASC").
		Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

// creditHolding adds quantity to a holding, creating it lazily.
func creditHolding(tx *gorm.DB, holder string, projectID uint64, vintageYear int, quantity uint64) error {
	var holding domain.Holding
	err := tx.Where("holder = ? AND project_id = ? AND vintage_year = ?", holder, projectID, vintageYear).
		First(&holding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		holding = domain.Holding{
			Holder:      holder,
			ProjectID:   projectID,
			VintageYear: vintageYear,
			Balance:     quantity,
		}
		return tx.Create(&holding).Error
	} else if err != nil {
		return err
	}
	holding.Balance += quantity
	return tx.Save(&holding).Error
}
