package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scattter/FundDig/internal/models"
)

type gormFundStore struct {
	db *gorm.DB
}

// NewFundStore returns a FundStore backed by GORM.
func NewFundStore(db *gorm.DB) FundStore {
	return &gormFundStore{db: db}
}

func (s *gormFundStore) Insert(ctx context.Context, fund *models.Fund) error {
	if err := s.db.WithContext(ctx).Omit("Plan").Create(fund).Error; err != nil {
		return fmt.Errorf("insert fund: %w", err)
	}
	return nil
}

func (s *gormFundStore) ListByPlan(ctx context.Context, planID uuid.UUID) ([]models.Fund, error) {
	var funds []models.Fund
	err := s.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("created_at DESC").
		Find(&funds).Error
	if err != nil {
		return nil, fmt.Errorf("list funds: %w", err)
	}
	return funds, nil
}

func (s *gormFundStore) CountByPlan(ctx context.Context) (map[uuid.UUID]int64, error) {
	type row struct {
		PlanID uuid.UUID
		N      int64
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&models.Fund{}).
		Select("plan_id, COUNT(*) AS n").
		Group("plan_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count funds: %w", err)
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.PlanID] = r.N
	}
	return counts, nil
}
