package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"event-awards/pkg/response"
)

// BodyLimit 请求体大小限制中间件（提名备注上限 2000 字，默认 1MB 足够）
// 声明长度已超限的请求直接拒绝，其余在读取时由 MaxBytesReader 截断
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体过大")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		for _, err := range c.Errors {
			var mbe *http.MaxBytesError
			if errors.As(err.Err, &mbe) {
				c.Status(http.StatusRequestEntityTooLarge)
				return
			}
		}
	}
}
