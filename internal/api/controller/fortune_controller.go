package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leon37/GolfFortune/internal/api/response"
	"github.com/leon37/GolfFortune/internal/model"
	"github.com/leon37/GolfFortune/internal/service"
)

// 公开接口的固定错误描述
const (
	ErrAnalyzeFailed = "Failed to analyze user info"
	ErrStreamFailed  = "Failed to stream fortune"
)

type FortuneController struct {
	service *service.FortuneService
}

// NewFortuneController 构造函数
func NewFortuneController(s *service.FortuneService) *FortuneController {
	return &FortuneController{service: s}
}

// FortuneRequest 前端提交的用户信息
// 旧版页面用 birth 字段传生日，两种都接受
type FortuneRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	BirthDate   string `json:"birthDate"`
	Birth       string `json:"birth"`
	BirthTime   string `json:"birthTime"`
	Gender      string `json:"gender"`
	Handicap    *int   `json:"handicap"`
	CountryClub string `json:"countryClub"`
	IronBrand   string `json:"ironBrand"`
	DriverBrand string `json:"driverBrand"`
	WedgeBrand  string `json:"wedgeBrand"`
	PutterBrand string `json:"putterBrand"`
	BallBrand   string `json:"ballBrand"`
	Extra       string `json:"extra"`
}

// Profile 转成领域对象
func (r FortuneRequest) Profile() model.UserProfile {
	birth := r.BirthDate
	if birth == "" {
		birth = r.Birth
	}
	return model.UserProfile{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		BirthDate:   birth,
		BirthTime:   r.BirthTime,
		Gender:      r.Gender,
		Handicap:    r.Handicap,
		CountryClub: r.CountryClub,
		IronBrand:   r.IronBrand,
		DriverBrand: r.DriverBrand,
		WedgeBrand:  r.WedgeBrand,
		PutterBrand: r.PutterBrand,
		BallBrand:   r.BallBrand,
		Extra:       r.Extra,
	}
}

// AnalyzeUser 缓冲式运势
// @Summary 生成运势
// @Tags Fortune
// @Accept json
// @Produce json
// @Param request body FortuneRequest true "用户信息"
// @Success 200 {object} model.FortuneResult
// @Failure 500 {object} map[string]string
// @Router /api/analyze-user [post]
func (ctrl *FortuneController) AnalyzeUser(c *gin.Context) {
	var req FortuneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Analyze params invalid", "err", err)
		response.Fail(c, http.StatusInternalServerError, ErrAnalyzeFailed)
		return
	}

	result := ctrl.service.Analyze(c.Request.Context(), req.Profile())
	c.JSON(http.StatusOK, result)
}

// StreamFortune 流式运势，纯文本分块输出
// @Summary 流式生成运势
// @Tags Fortune
// @Accept json
// @Produce plain
// @Param request body FortuneRequest true "用户信息"
// @Router /api/fortune [post]
func (ctrl *FortuneController) StreamFortune(c *gin.Context) {
	var req FortuneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Stream params invalid", "err", err)
		response.Fail(c, http.StatusInternalServerError, ErrStreamFailed)
		return
	}

	// 1. 请求结束时 ctx 取消，service 会关闭通道
	streamCh := ctrl.service.Stream(c.Request.Context(), req.Profile())

	// 2. 设置响应头
	c.Writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.Writer.Header().Set("Cache-Control", "no-store")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	// 3. 每个片段立刻 Flush
	for fragment := range streamCh {
		if _, err := c.Writer.WriteString(fragment); err != nil {
			slog.Warn("Client gone while streaming", "err", err)
			return
		}
		c.Writer.Flush()
	}
}
