package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/scattter/FundDig/internal/service"
	"github.com/scattter/FundDig/internal/util"
)

// PlanHandler 负责计划相关接口
type PlanHandler struct {
	svc *service.PlanService
}

func NewPlanHandler(svc *service.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// ---------- 请求结构 ----------

type createPlanReq struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description" binding:"omitempty,max=1000"`
	Rules       json.RawMessage `json:"rules"`
}

type updatePlanReq struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// writeError maps service errors onto the uniform error envelope.
func writeError(c *gin.Context, err error) {
	var badReq *service.BadRequestError
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		util.Error(c, http.StatusNotFound, "Plan not found")
	case errors.As(err, &badReq):
		util.Error(c, http.StatusBadRequest, badReq.Message)
	default:
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

// CreatePlan handles POST /plans.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "参数错误")
		return
	}

	plan, err := h.svc.Create(c.Request.Context(), req.Name, req.Description, datatypes.JSON(req.Rules))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListPlans handles GET /plans. Every plan carries its fund count.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan handles GET /plans/:id, where :id is the primary id or the 8-digit short ID.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdatePlan handles PUT /plans/:id. Only supplied fields are overwritten.
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req updatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "参数错误")
		return
	}

	plan, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /plans/:id and returns whether a row was removed.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	removed, err := h.svc.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, removed)
}
