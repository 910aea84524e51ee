package errors

import (
	"errors"
	"fmt"
)

// ErrValidation 调用方输入不合法（缺少必填 ID、类型与提名对象不匹配等）
// 在访问内容库之前检出，不产生任何副作用
var ErrValidation = errors.New("参数校验失败")

// ValidationError 带字段信息的校验错误，errors.Is(err, ErrValidation) 为真
type ValidationError struct {
	Field   string
	Message string
}

// NewValidation 创建字段校验错误
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is 使所有 ValidationError 都能匹配 ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
