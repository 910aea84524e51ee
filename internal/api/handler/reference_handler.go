package handler

import (
	"github.com/gin-gonic/gin"

	"event-awards/internal/dto"
	"event-awards/internal/service"
	"event-awards/pkg/response"
)

// ReferenceHandler 典礼、类别、参赛者、队伍等基础数据 HTTP 处理器
type ReferenceHandler struct {
	referenceSvc service.ReferenceService
}

// NewReferenceHandler 创建 ReferenceHandler
func NewReferenceHandler(referenceSvc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceSvc: referenceSvc}
}

// ListCeremonies 获取典礼列表（按 order 升序）
// GET /api/v1/ceremonies
func (h *ReferenceHandler) ListCeremonies(c *gin.Context) {
	list, err := h.referenceSvc.ListCeremonies(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListCategories 获取奖项类别
// GET /api/v1/categories?type=individual
func (h *ReferenceHandler) ListCategories(c *gin.Context) {
	var req dto.CategoryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeBindFailed, "type 必须为 individual、team 或 overall")
		return
	}

	list, err := h.referenceSvc.ListCategories(c.Request.Context(), req.Type)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListParticipants 获取参赛者列表
// GET /api/v1/participants
func (h *ReferenceHandler) ListParticipants(c *gin.Context) {
	list, err := h.referenceSvc.ListParticipants(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListTeams 获取队伍列表
// GET /api/v1/teams
func (h *ReferenceHandler) ListTeams(c *gin.Context) {
	list, err := h.referenceSvc.ListTeams(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}
