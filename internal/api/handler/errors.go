package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"event-awards/internal/service"
	pkgerrors "event-awards/pkg/errors"
	"event-awards/pkg/response"
)

// 业务错误码
const (
	codeBindFailed = 10001
	codeValidation = 10003
)

// handleServiceError 统一映射 Service 层错误：
//   - 校验错误 → 400，details 为字段级说明
//   - 内容库错误 → 502，不透出上游细节
//   - 其他 → 500
func handleServiceError(c *gin.Context, err error) {
	var ve *pkgerrors.ValidationError
	switch {
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, http.StatusBadRequest, codeValidation, "参数校验失败", ve.Error())
	case errors.Is(err, pkgerrors.ErrValidation):
		response.BadRequest(c, codeValidation, "参数校验失败")
	case errors.Is(err, service.ErrUpstream):
		response.BadGateway(c)
	default:
		response.InternalError(c)
	}
}
