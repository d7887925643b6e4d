package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/scattter/FundDig/internal/models"
	"github.com/scattter/FundDig/internal/store"
	"github.com/scattter/FundDig/internal/util"
)

const maxFundNameLen = 50

// FundInfoClient looks up a fund's display name by its 6-digit code.
type FundInfoClient interface {
	FundName(ctx context.Context, code string) (string, error)
}

// FundInfo is the pass-through lookup result.
type FundInfo struct {
	Name string `json:"name"`
}

// CreateFundInput carries the caller-supplied fields for a new holding.
type CreateFundInput struct {
	FundCode string
	FundName string
	Amount   decimal.Decimal
	FeeRate  *decimal.Decimal
}

// FundService implements fund operations scoped to an owning plan.
type FundService struct {
	plans store.PlanStore
	funds store.FundStore
	info  FundInfoClient
}

func NewFundService(plans store.PlanStore, funds store.FundStore, info FundInfoClient) *FundService {
	return &FundService{plans: plans, funds: funds, info: info}
}

// ListByPlan returns the plan's funds, newest first. The identifier follows
// the same id-or-shortId rule as plan resolution.
func (s *FundService) ListByPlan(ctx context.Context, identifier string) ([]models.Fund, error) {
	plan, err := resolvePlan(ctx, s.plans, identifier)
	if err != nil {
		return nil, err
	}
	return s.funds.ListByPlan(ctx, plan.ID)
}

// CreateForPlan persists a new fund holding under the resolved plan.
func (s *FundService) CreateForPlan(ctx context.Context, identifier string, in CreateFundInput) (*models.Fund, error) {
	plan, err := resolvePlan(ctx, s.plans, identifier)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(in.FundCode)
	if code == "" {
		return nil, badRequest("基金代码不能为空")
	}
	if in.Amount.IsNegative() {
		return nil, badRequest("持有金额不能为负")
	}

	feeRate := decimal.Zero
	if in.FeeRate != nil {
		if in.FeeRate.IsNegative() {
			return nil, badRequest("费率不能为负")
		}
		feeRate = *in.FeeRate
	}

	// 基金名称超长时截断而不是报错，和名称查询接口返回值保持一致
	name := in.FundName
	if runes := []rune(name); len(runes) > maxFundNameLen {
		name = string(runes[:maxFundNameLen])
	}

	fund := &models.Fund{
		PlanID:   plan.ID,
		FundCode: code,
		FundName: name,
		Amount:   in.Amount,
		FeeRate:  feeRate,
	}
	if err := s.funds.Insert(ctx, fund); err != nil {
		return nil, err
	}
	return fund, nil
}

// FetchFundInfo validates the code and performs one synchronous lookup
// against the external fund-information service. A malformed code never
// reaches the network.
func (s *FundService) FetchFundInfo(ctx context.Context, code string) (*FundInfo, error) {
	code = strings.TrimSpace(code)
	if err := util.ValidateFundCode(code); err != nil {
		return nil, badRequest("基金代码必须为6位数字")
	}

	name, err := s.info.FundName(ctx, code)
	if err != nil {
		return nil, badRequest("获取基金信息失败")
	}
	return &FundInfo{Name: name}, nil
}
