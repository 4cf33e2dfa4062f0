package controller

import (
	"errors"
	"net/http"
	"strings"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError 把服务层错误翻译为 JSON 失败响应；5xx 使用 fallback 作为面向用户的 error，并附带原因
func respondError(ctx *gin.Context, err error, fallback string) {
	status := util.StatusFor(err)

	switch {
	case errors.Is(err, util.ErrValidation):
		util.BadRequest(ctx, validationMessage(err))
	case status >= http.StatusInternalServerError:
		logger.Log.Error(fallback,
			zap.String("path", ctx.FullPath()),
			zap.Int("status", status),
			zap.Error(err),
		)
		util.FailWithCause(ctx, status, fallback, err)
	default:
		util.Fail(ctx, status, err.Error())
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), util.ErrValidation.Error()+": ")
	if msg == "" {
		return "Invalid request"
	}
	return msg
}
