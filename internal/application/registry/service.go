package registry

import (
	"context"
	"errors"

	"offsetledger-backend/internal/domain"

	"gorm.io/gorm"
)

// Service owns project metadata and lifecycle status.
type Service struct {
	DB *gorm.DB
}

// RegisterInput carries the caller-supplied project attributes.
type RegisterInput struct {
	Name        string
	Description string
	Location    string
	Category    domain.Category
	StartAt     int64
	EndAt       int64
	RegistryURL string
}

// Register stores a new pending project owned by caller and returns its ID.
func (s *Service) Register(ctx context.Context, in RegisterInput, caller string) (uint64, error) {
	if in.Name == "" || in.Location == "" {
		return 0, domain.ErrEmptyField
	}
	if !domain.ValidCategory(in.Category) {
		return 0, domain.ErrInvalidCategory
	}
	if in.StartAt >= in.EndAt {
		return 0, domain.ErrInvalidDateRange
	}

	var id uint64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = domain.NextID(tx, domain.CounterProjects)
		if err != nil {
			return err
		}
		project := domain.Project{
			ProjectID:   id,
			Name:        in.Name,
			Description: in.Description,
			Location:    in.Location,
			Category:    in.Category,
			StartAt:     in.StartAt,
			EndAt:       in.EndAt,
			Owner:       caller,
			Status:      domain.ProjectStatusPending,
			RegistryURL: in.RegistryURL,
		}
		return tx.Create(&project).Error
	})
	return id, err
}

// Get returns a full project snapshot.
func (s *Service) Get(ctx context.Context, projectID uint64) (*domain.Project, error) {
	var project domain.Project
	if err := s.DB.WithContext(ctx).Where("project_id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// List returns all projects, optionally filtered by status, newest first.
func (s *Service) List(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error) {
	q := s.DB.WithContext(ctx).Order("project_id DESC")
	if status != nil && *status != "" {
		q = q.Where("status = ?", *status)
	}
	var projects []domain.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
