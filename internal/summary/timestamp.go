package summary

import (
	"strings"
	"time"
)

// 内容库可能返回的时间格式
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// timestampKey 解析时间戳为排序键，缺失或无法解析按 Unix 纪元（最旧）处理
func timestampKey(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixNano()
		}
	}
	return 0
}

// newerFirst 时间降序，并列时 ID 升序
func newerFirst(tsA, idA, tsB, idB string) bool {
	ka, kb := timestampKey(tsA), timestampKey(tsB)
	if ka != kb {
		return ka > kb
	}
	return idA < idB
}
