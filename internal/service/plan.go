package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/scattter/FundDig/internal/models"
	"github.com/scattter/FundDig/internal/store"
	"github.com/scattter/FundDig/internal/util"
)

// 短 ID 固定 8 位数字；长度同时是 Resolve 区分短 ID 和主键的依据
const shortIDLength = 8

// PlanSummary is a plan annotated with its fund count for list views.
type PlanSummary struct {
	models.Plan
	FundCount int64 `json:"fundCount"`
}

// PlanService implements plan CRUD on top of the stores.
type PlanService struct {
	plans store.PlanStore
	funds store.FundStore
}

func NewPlanService(plans store.PlanStore, funds store.FundStore) *PlanService {
	return &PlanService{plans: plans, funds: funds}
}

// Create persists a new plan with a freshly allocated unique short ID.
func (s *PlanService) Create(ctx context.Context, name, description string, rules datatypes.JSON) (*models.Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, badRequest("计划名称不能为空")
	}

	shortID, err := util.GenerateUniqueDigits(shortIDLength, func(candidate string) (bool, error) {
		return s.plans.ShortIDExists(ctx, candidate)
	})
	if err != nil {
		return nil, fmt.Errorf("allocate short id: %w", err)
	}

	plan := &models.Plan{
		ShortID:     shortID,
		Name:        name,
		Description: description,
		Rules:       rules,
	}
	if err := s.plans.Insert(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// FindAll returns every plan, newest first, annotated with its fund count.
// The counts come from a single aggregate query, not one query per plan.
func (s *PlanService) FindAll(ctx context.Context) ([]PlanSummary, error) {
	plans, err := s.plans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.funds.CountByPlan(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]PlanSummary, 0, len(plans))
	for _, p := range plans {
		summaries = append(summaries, PlanSummary{Plan: p, FundCount: counts[p.ID]})
	}
	return summaries, nil
}

// Resolve looks a plan up by primary id or short ID. An 8-character
// identifier tries the short ID first, then falls back to the primary id.
func (s *PlanService) Resolve(ctx context.Context, identifier string) (*models.Plan, error) {
	return resolvePlan(ctx, s.plans, identifier)
}

// Update overwrites only the supplied fields and persists the plan.
func (s *PlanService) Update(ctx context.Context, identifier string, name, description *string) (*models.Plan, error) {
	plan, err := resolvePlan(ctx, s.plans, identifier)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, badRequest("计划名称不能为空")
		}
		plan.Name = trimmed
	}
	if description != nil {
		plan.Description = *description
	}

	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Remove deletes the plan and, via the store cascade, all of its funds.
// It reports whether a row was actually removed.
func (s *PlanService) Remove(ctx context.Context, identifier string) (bool, error) {
	plan, err := resolvePlan(ctx, s.plans, identifier)
	if err != nil {
		return false, err
	}
	return s.plans.Delete(ctx, plan.ID)
}

func resolvePlan(ctx context.Context, plans store.PlanStore, identifier string) (*models.Plan, error) {
	if len(identifier) == shortIDLength {
		plan, err := plans.FindByShortID(ctx, identifier)
		if err == nil {
			return plan, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	id, err := uuid.Parse(identifier)
	if err != nil {
		// 既不是短 ID 也不是合法 UUID
		return nil, ErrPlanNotFound
	}

	plan, err := plans.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}
