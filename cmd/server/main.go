package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leon37/GolfFortune/internal/api"
	"github.com/leon37/GolfFortune/internal/api/controller"
	"github.com/leon37/GolfFortune/internal/app"
	"github.com/leon37/GolfFortune/internal/config"
	"github.com/leon37/GolfFortune/internal/service"
)

// @title           GolfFortune API
// @version         1.0
// @description     골신 골프 운세 서비스
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 请在输入框中输入 "Bearer <token>" (注意 Bearer 和 token 之间有空格)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 1. 初始化 Logger
	// 使用 JSONHandler 可以让日志以 JSON 格式输出，方便解析
	level := slog.LevelInfo
	if conf.Server.Mode == gin.DebugMode {
		level = slog.LevelDebug // 段落匹配结果只在 debug 下输出
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
	slog.SetDefault(logger)

	slog.Info("GolfFortune 系统启动中...",
		"backend", conf.Generation.Backend,
		"stream_backend", conf.StreamBackendName(),
		"template", conf.Generation.Template,
		"storage", conf.Storage.Driver)

	// 2. Infra Initialization
	var reg *prometheus.Registry
	var metricsHandler http.Handler
	if conf.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	// 3. Layer Wiring (依赖注入)
	var registerer prometheus.Registerer
	if reg != nil {
		registerer = reg
	}
	pipeline, err := app.NewPipeline(conf, registerer)
	if err != nil {
		slog.Error("初始化失败", "err", err)
		os.Exit(1)
	}
	authSvc := service.NewAdminAuthService(conf.Admin.Username, conf.Admin.PasswordHash, conf.JWT.Secret, conf.JWT.ExpireHours)
	if conf.Admin.PasswordHash == "" || conf.JWT.Secret == "" {
		slog.Warn("管理端未配置密码或 JWT 密钥，登录将全部被拒绝")
	}

	// 4. Server Start
	gin.SetMode(conf.Server.Mode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	api.RegisterRoutes(r,
		controller.NewFortuneController(pipeline.Service),
		controller.NewAdminController(authSvc, pipeline.Store),
		api.RouterOptions{
			JWTSecret:   conf.JWT.Secret,
			MetricsPath: conf.Metrics.Path,
			Metrics:     metricsHandler,
		})

	slog.Info("GolfFortune Web Server 启动中", "port", conf.Server.Port)
	if err := r.Run(":" + conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
		os.Exit(1)
	}
}
