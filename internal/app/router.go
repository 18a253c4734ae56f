package app

import (
	"cyber_quiz_backend/docs"
	"cyber_quiz_backend/internal/config"
	"cyber_quiz_backend/internal/middleware"
	"cyber_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Cybersecurity Training Game API",
			"version": "1.0.0",
			"docs":    "/swagger/index.html",
		})
	})

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/me", c.auth.GetMe)

		// 题目相关
		authGroup.GET("/questions/random", c.question.GetRandomQuestions)
		authGroup.GET("/questions/categories", c.question.GetCategories)
		authGroup.POST("/questions/submit", c.question.SubmitAnswer)
		authGroup.GET("/questions/stats", c.question.GetStats)

		// 排行榜
		authGroup.GET("/leaderboard", c.leaderboard.GetLeaderboard)
		authGroup.GET("/leaderboard/me", c.leaderboard.GetMyRank)
	}
}
