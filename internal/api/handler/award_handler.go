package handler

import (
	"github.com/gin-gonic/gin"

	"event-awards/internal/dto"
	"event-awards/internal/service"
	"event-awards/pkg/response"
)

// AwardHandler 奖项模块 HTTP 处理器
type AwardHandler struct {
	awardSvc service.AwardService
}

// NewAwardHandler 创建 AwardHandler
func NewAwardHandler(awardSvc service.AwardService) *AwardHandler {
	return &AwardHandler{awardSvc: awardSvc}
}

// ListAwards 获取奖项列表
// GET /api/v1/awards?ceremony_id=xxx
func (h *AwardHandler) ListAwards(c *gin.Context) {
	var req dto.AwardListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeBindFailed, "参数校验失败")
		return
	}

	list, err := h.awardSvc.List(c.Request.Context(), req.CeremonyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// CreateAward 提名奖项，新奖项为 pending
// POST /api/v1/awards
func (h *AwardHandler) CreateAward(c *gin.Context) {
	var req dto.CreateAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeBindFailed, "参数校验失败")
		return
	}

	award, err := h.awardSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, award)
}

// UpdateStatus 修改奖项状态
// PATCH /api/v1/awards/:id/status
func (h *AwardHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAwardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeBindFailed, "参数校验失败")
		return
	}

	award, err := h.awardSvc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, award)
}

// ApproveAward 审批通过
// POST /api/v1/awards/:id/approve
func (h *AwardHandler) ApproveAward(c *gin.Context) {
	award, err := h.awardSvc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, award)
}
