package handler

import (
	"github.com/gin-gonic/gin"

	"event-awards/internal/dto"
	"event-awards/internal/service"
	"event-awards/pkg/response"
)

// SummaryHandler 仪表盘汇总 HTTP 处理器
type SummaryHandler struct {
	summarySvc service.SummaryService
}

// NewSummaryHandler 创建 SummaryHandler
func NewSummaryHandler(summarySvc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summarySvc: summarySvc}
}

// CeremonySummary 典礼汇总，未指定 ceremony_id 时汇总整场活动
// GET /api/v1/summary/ceremony?ceremony_id=xxx
func (h *SummaryHandler) CeremonySummary(c *gin.Context) {
	var req dto.AwardListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeBindFailed, "参数校验失败")
		return
	}

	result, err := h.summarySvc.CeremonySummary(c.Request.Context(), req.CeremonyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}

// ParticipantTeamSummary 参赛者 / 队伍汇总
// GET /api/v1/summary/participants-teams?ceremony_id=xxx
func (h *SummaryHandler) ParticipantTeamSummary(c *gin.Context) {
	var req dto.AwardListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeBindFailed, "参数校验失败")
		return
	}

	result, err := h.summarySvc.ParticipantTeamSummary(c.Request.Context(), req.CeremonyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}

// ParticipantAwards 某个参赛者跨典礼的奖项
// GET /api/v1/participants/:id/awards
func (h *SummaryHandler) ParticipantAwards(c *gin.Context) {
	result, err := h.summarySvc.ParticipantAwards(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}

// TeamAwards 某支队伍跨典礼的奖项
// GET /api/v1/teams/:id/awards
func (h *SummaryHandler) TeamAwards(c *gin.Context) {
	result, err := h.summarySvc.TeamAwards(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}
