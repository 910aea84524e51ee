package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

// ── Mock Limiter ──

type mockLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (m *mockLimiter) CheckRateLimit(_ context.Context, key string, _ int, _ time.Duration) (bool, error) {
	m.keys = append(m.keys, key)
	return m.allowed, m.err
}

// ── RateLimit ──

func TestRateLimit_Rejects(t *testing.T) {
	limiter := &mockLimiter{allowed: false}
	r := gin.New()
	r.POST("/awards", RateLimit(limiter, 5, time.Minute, zap.NewNop()), okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/awards", nil))

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("unexpected Retry-After %q", w.Header().Get("Retry-After"))
	}
	if len(limiter.keys) != 1 || !strings.HasSuffix(limiter.keys[0], ":/awards") {
		t.Errorf("限流 key 应包含路由: %v", limiter.keys)
	}
}

func TestRateLimit_DegradesOnError(t *testing.T) {
	r := gin.New()
	r.POST("/awards", RateLimit(&mockLimiter{err: errors.New("redis down")}, 5, time.Minute, zap.NewNop()), okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/awards", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Redis 出错时应放行，got %d", w.Code)
	}
}

func TestRateLimit_NilLimiterPasses(t *testing.T) {
	r := gin.New()
	r.POST("/awards", RateLimit(nil, 5, time.Minute, zap.NewNop()), okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/awards", nil))

	if w.Code != http.StatusOK {
		t.Errorf("未配置 Redis 时应放行，got %d", w.Code)
	}
}

// ── RequestID ──

func TestRequestID_GeneratesAndPreserves(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/x", nil))
	if len(seen) != 36 || w.Header().Get(RequestIDHeader) != seen {
		t.Errorf("应生成 UUID 并写入响应头: ctx=%q header=%q", seen, w.Header().Get(RequestIDHeader))
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	if seen != "abc-123" {
		t.Errorf("应沿用调用方 ID，实际=%q", seen)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("a", 65))
	r.ServeHTTP(w, req)
	if len(seen) != 36 {
		t.Errorf("超长 ID 应被替换，实际=%q", seen)
	}
}

// ── CORS ──

func TestCORS_AllowedOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://dash.local/"}))
	r.GET("/x", okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Origin", "http://dash.local")
	r.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "http://dash.local" {
		t.Errorf("应允许配置的来源: %v", w.Header())
	}
	if !strings.Contains(w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition") {
		t.Error("应暴露 Content-Disposition 供下载使用")
	}
}

func TestCORS_PreflightAndUnknownOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://dash.local"}))
	r.GET("/x", okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/x", nil)
	req.Header.Set("Origin", "http://evil.local")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("未配置的来源不应被允许")
	}
}

// ── BodyLimit ──

func TestBodyLimit_RejectsDeclaredOversize(t *testing.T) {
	r := gin.New()
	r.POST("/awards", BodyLimit(10), okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/awards", strings.NewReader(strings.Repeat("x", 64))))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

// ── SecurityHeaders ──

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/x", okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/x", nil))

	if w.Header().Get("X-Content-Type-Options") != "nosniff" || w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("安全响应头缺失: %v", w.Header())
	}
}
