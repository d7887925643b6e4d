package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/scattter/FundDig/internal/service"
	"github.com/scattter/FundDig/internal/util"
)

// FundHandler 负责基金持仓和基金名称查询接口
type FundHandler struct {
	svc *service.FundService
}

func NewFundHandler(svc *service.FundService) *FundHandler {
	return &FundHandler{svc: svc}
}

type createFundReq struct {
	FundCode string           `json:"fundCode" binding:"required"`
	FundName string           `json:"fundName"` // 超长由 service 截断
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	FeeRate  *decimal.Decimal `json:"feeRate"`
}

// ListFunds handles GET /plans/:id/funds.
func (h *FundHandler) ListFunds(c *gin.Context) {
	funds, err := h.svc.ListByPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, funds)
}

// CreateFund handles POST /plans/:id/funds.
func (h *FundHandler) CreateFund(c *gin.Context) {
	var req createFundReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "参数错误")
		return
	}

	fund, err := h.svc.CreateForPlan(c.Request.Context(), c.Param("id"), service.CreateFundInput{
		FundCode: req.FundCode,
		FundName: req.FundName,
		Amount:   *req.Amount,
		FeeRate:  req.FeeRate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fund)
}

// GetFundInfo handles GET /funds/:code/info, a pass-through name lookup.
func (h *FundHandler) GetFundInfo(c *gin.Context) {
	info, err := h.svc.FetchFundInfo(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
