package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"event-awards/internal/service"
	"event-awards/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportLeaderboard 导出获奖榜单
// GET /api/v1/export/leaderboard?ceremony_id=xxx
func (h *ExportHandler) ExportLeaderboard(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportLeaderboard(c.Request.Context(), c.Query("ceremony_id"))
	if err != nil {
		if errors.Is(err, service.ErrExportGenerateFail) {
			response.Error(c, http.StatusInternalServerError, 16101, "生成 Excel 文件失败")
			return
		}
		handleServiceError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
