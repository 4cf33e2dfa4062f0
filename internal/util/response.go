package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一失败响应结构
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Success 在 payload 上补充 success=true 后返回 200
func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// FailWithCause 返回面向用户的 error 文本，message 中附带底层原因
func FailWithCause(c *gin.Context, code int, message string, cause error) {
	resp := ErrorResponse{
		Success: false,
		Error:   message,
	}
	if cause != nil {
		resp.Message = cause.Error()
	}
	c.JSON(code, resp)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}
