package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leon37/GolfFortune/internal/api/response"
	"github.com/leon37/GolfFortune/internal/model"
	"github.com/leon37/GolfFortune/internal/repository"
	"github.com/leon37/GolfFortune/internal/service"
)

// AdminController 管理端：登录和查看保存的运势
type AdminController struct {
	auth  *service.AdminAuthService
	store repository.FortuneStore
}

// NewAdminController 构造函数
func NewAdminController(auth *service.AdminAuthService, store repository.FortuneStore) *AdminController {
	return &AdminController{auth: auth, store: store}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login 管理员登录
// @Summary 管理员登录
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录参数"
// @Success 200 {object} response.Response{data=LoginResponse}
// @Router /api/v1/admin/login [post]
func (ctrl *AdminController) Login(c *gin.Context) {
	var req LoginRequest

	// 1. 参数校验
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	// 2. 业务逻辑
	token, err := ctrl.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("Admin login failed", "username", req.Username, "err", err)
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "登录失败: 账号或密码错误")
			return
		}
		response.Error(c, http.StatusInternalServerError, "登录失败")
		return
	}

	// 3. 成功响应
	slog.Info("Admin logged in", "username", req.Username)
	response.Success(c, LoginResponse{Token: token})
}

// ListRequest 列表请求参数
type ListRequest struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
	Name     string `form:"name"`
}

type ListResponse struct {
	List  []model.FortuneEntry `json:"list"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
}

// ListFortunes 分页查看保存的运势
// @Summary 运势列表
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param page_size query int false "每页条数"
// @Param name query string false "姓名关键字"
// @Success 200 {object} response.Response{data=ListResponse}
// @Router /api/v1/admin/fortunes [get]
func (ctrl *AdminController) ListFortunes(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数错误: "+err.Error())
		return
	}

	filter := repository.ListFilter{Page: req.Page, PageSize: req.PageSize, Name: req.Name}.Normalize()
	list, total, err := ctrl.store.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("List fortunes failed", "err", err)
		response.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}

	response.Success(c, ListResponse{List: list, Total: total, Page: filter.Page})
}
