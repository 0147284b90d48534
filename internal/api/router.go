package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leon37/GolfFortune/internal/api/controller"
	"github.com/leon37/GolfFortune/internal/api/middleware"
)

// RouterOptions 路由的可选部分
type RouterOptions struct {
	JWTSecret   string
	MetricsPath string
	Metrics     http.Handler // 为 nil 时不暴露 /metrics
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, fortuneCtrl *controller.FortuneController, adminCtrl *controller.AdminController, opts RouterOptions) {
	r.Use(middleware.Cors())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(opts.Metrics))
	}

	// 页面调用的接口，路径和旧版保持一致
	public := r.Group("/api")
	{
		public.POST("/analyze-user", fortuneCtrl.AnalyzeUser)
		public.POST("/fortune", fortuneCtrl.StreamFortune)
	}

	admin := r.Group("/api/v1/admin")
	admin.POST("/login", adminCtrl.Login)

	protected := admin.Group("")
	protected.Use(middleware.JWTAuth(opts.JWTSecret))
	{
		protected.GET("/fortunes", adminCtrl.ListFortunes)
	}
}
