package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"event-awards/config"
	"event-awards/internal/api/handler"
	"event-awards/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时写接口不限流
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.Limiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	writeLimit := middleware.RateLimit(limiter, cfg.RateLimit.WriteLimit, cfg.RateLimit.Window, logger)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 基础数据
		v1.GET("/ceremonies", h.Reference.ListCeremonies)
		v1.GET("/categories", h.Reference.ListCategories)
		v1.GET("/participants", h.Reference.ListParticipants)
		v1.GET("/teams", h.Reference.ListTeams)

		// 单个参赛者 / 队伍的奖项历史
		v1.GET("/participants/:id/awards", h.Summary.ParticipantAwards)
		v1.GET("/teams/:id/awards", h.Summary.TeamAwards)

		// 奖项模块
		awards := v1.Group("/awards")
		{
			awards.GET("", h.Award.ListAwards)
			awards.POST("", writeLimit, h.Award.CreateAward)
			awards.PATCH("/:id/status", writeLimit, h.Award.UpdateStatus)
			awards.POST("/:id/approve", writeLimit, h.Award.ApproveAward)
		}

		// 汇总模块
		summary := v1.Group("/summary")
		{
			summary.GET("/ceremony", h.Summary.CeremonySummary)
			summary.GET("/participants-teams", h.Summary.ParticipantTeamSummary)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/leaderboard", h.Export.ExportLeaderboard)
		}
	}

	return r
}
