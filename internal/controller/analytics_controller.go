package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// TrackRequest 所有字段可选，字段格式不对也不会失败：
// duration 接受数字或数字字符串（四舍五入，负数按 0），
// timestamp 接受 RFC 3339、YYYY-MM-DD 或毫秒时间戳，无法识别时使用当前时间
// swagger:model TrackRequest
type TrackRequest struct {
	Topic     json.RawMessage `json:"topic" swaggertype:"string"`
	Type      json.RawMessage `json:"type" swaggertype:"string"`
	Duration  json.RawMessage `json:"duration" swaggertype:"number"`
	Timestamp json.RawMessage `json:"timestamp" swaggertype:"string"`
}

func (r TrackRequest) input() service.TrackInput {
	return service.TrackInput{
		Topic:     looseString(r.Topic),
		Type:      model.ContentType(looseString(r.Type)),
		Duration:  looseDuration(r.Duration),
		Timestamp: looseTimestamp(r.Timestamp),
	}
}

func isNull(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	return len(v) == 0 || bytes.Equal(v, []byte("null"))
}

// looseString 非字符串的值按原始 JSON 文本记录
func looseString(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func looseNumber(raw json.RawMessage) (float64, bool) {
	if isNull(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func looseDuration(raw json.RawMessage) int {
	f, ok := looseNumber(raw)
	if !ok || math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(f))
}

func looseTimestamp(raw json.RawMessage) *time.Time {
	if isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		for _, layout := range []string{time.RFC3339Nano, util.DateFormat} {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	// 毫秒时间戳
	if ms, ok := looseNumber(raw); ok && ms > 0 && ms < 1e15 {
		t := time.UnixMilli(int64(ms)).UTC()
		return &t
	}
	return nil
}

// @Summary 记录一次学习行为
// @Description 未知的 type 只记录会话，不计入 featureUsage
// @Tags 分析
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body TrackRequest false "学习行为"
// @Success 200 {object} object "success, message"
// @Failure 400 {object} util.ErrorResponse "请求体不是合法 JSON"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /api/analytics/track [post]
func (c *AnalyticsController) Track(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx, "Access token required")
		return
	}

	var req TrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, "Invalid analytics payload")
		return
	}

	c.AnalyticsService.Track(user.UserID, req.input())

	util.Success(ctx, gin.H{"message": "Analytics tracked"})
}

// @Summary 获取学习统计
// @Description 最近七天、热门主题（前 5）、功能使用次数与最近 10 次会话
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.AnalyticsSummary
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /api/analytics/stats [get]
func (c *AnalyticsController) Stats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx, "Access token required")
		return
	}

	ctx.JSON(http.StatusOK, c.AnalyticsService.Stats(user.UserID))
}
