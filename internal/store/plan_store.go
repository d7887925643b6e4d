package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scattter/FundDig/internal/models"
)

type gormPlanStore struct {
	db *gorm.DB
}

// NewPlanStore returns a PlanStore backed by GORM.
func NewPlanStore(db *gorm.DB) PlanStore {
	return &gormPlanStore{db: db}
}

func (s *gormPlanStore) Insert(ctx context.Context, plan *models.Plan) error {
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func (s *gormPlanStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find plan by id: %w", err)
	}
	return &plan, nil
}

func (s *gormPlanStore) FindByShortID(ctx context.Context, shortID string) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.WithContext(ctx).Where("short_id = ?", shortID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find plan by short id: %w", err)
	}
	return &plan, nil
}

func (s *gormPlanStore) ShortIDExists(ctx context.Context, shortID string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Plan{}).
		Where("short_id = ?", shortID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check short id: %w", err)
	}
	return n > 0, nil
}

func (s *gormPlanStore) ListAll(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (s *gormPlanStore) Update(ctx context.Context, plan *models.Plan) error {
	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

func (s *gormPlanStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Plan{})
	if res.Error != nil {
		return false, fmt.Errorf("delete plan: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
