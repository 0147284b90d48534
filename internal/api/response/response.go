package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构 (管理端接口)
type Response struct {
	Code int         `json:"code"` // 0 代表成功，非 0 代表错误码
	Msg  string      `json:"msg"`  // 提示信息
	Data interface{} `json:"data"` // 数据载荷
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{
		Code: -1,
		Msg:  msg,
		Data: nil,
	})
}

// Fail 公开接口的错误响应，只带一个固定的错误描述，不暴露内部细节
func Fail(c *gin.Context, httpStatus int, kind string) {
	c.AbortWithStatusJSON(httpStatus, gin.H{"error": kind})
}
