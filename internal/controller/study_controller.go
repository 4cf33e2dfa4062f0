package controller

import (
	"errors"
	"net/http"
	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StudyController struct {
	StudyService *service.StudyService
	PoweredBy    string
}

func NewStudyController(studyService *service.StudyService, poweredBy string) *StudyController {
	return &StudyController{
		StudyService: studyService,
		PoweredBy:    poweredBy,
	}
}

// swagger:model ExplainRequest
type ExplainRequest struct {
	Concept string `json:"concept"`
}

// swagger:model TopicRequest
type TopicRequest struct {
	Topic string `json:"topic"`
}

// swagger:model FlashcardsRequest
type FlashcardsRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// swagger:model QuizRequest
type QuizRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// Explain godoc
// @Summary 通俗解释概念
// @Description provider 失败时仍返回 200，success=false，explanation 中带有致歉文本
// @Tags AI
// @Accept json
// @Produce json
// @Param body body ExplainRequest true "概念"
// @Success 200 {object} object "success, concept, explanation"
// @Failure 400 {object} util.ErrorResponse "缺少 concept"
// @Router /api/ai/explain [post]
func (c *StudyController) Explain(ctx *gin.Context) {
	var req ExplainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	explanation, err := c.StudyService.Explain(ctx.Request.Context(), req.Concept)
	if errors.Is(err, util.ErrValidation) {
		respondError(ctx, err, "")
		return
	}
	if err != nil {
		logger.Log.Warn("explain degraded", zap.String("concept", req.Concept), zap.Error(err))
		ctx.JSON(http.StatusOK, gin.H{
			"success":     false,
			"concept":     req.Concept,
			"explanation": "Sorry, I couldn't explain that right now. Error: " + err.Error(),
			"error":       err.Error(),
		})
		return
	}

	util.Success(ctx, gin.H{
		"concept":     req.Concept,
		"explanation": explanation,
		"powered_by":  c.PoweredBy,
	})
}

// StudyNotes godoc
// @Summary 生成学习笔记
// @Tags AI
// @Accept json
// @Produce json
// @Param body body TopicRequest true "主题"
// @Success 200 {object} object "success, topic, notes"
// @Failure 400 {object} util.ErrorResponse "缺少 topic"
// @Failure 500 {object} util.ErrorResponse "provider 失败"
// @Failure 504 {object} util.ErrorResponse "provider 超时"
// @Router /api/ai/study-notes [post]
func (c *StudyController) StudyNotes(ctx *gin.Context) {
	var req TopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	notes, err := c.StudyService.StudyNotes(ctx.Request.Context(), req.Topic)
	if err != nil {
		respondError(ctx, err, "Failed to generate notes")
		return
	}

	util.Success(ctx, gin.H{
		"topic":        req.Topic,
		"notes":        notes,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"powered_by":   c.PoweredBy,
	})
}

// Flashcards godoc
// @Summary 生成闪卡
// @Description flashcards 为原始文本，cards 为解析后的问答对
// @Tags AI
// @Accept json
// @Produce json
// @Param body body FlashcardsRequest true "主题与数量（默认 5，最多 20）"
// @Success 200 {object} object "success, topic, flashcards, cards, count"
// @Failure 400 {object} util.ErrorResponse "参数错误"
// @Failure 500 {object} util.ErrorResponse "provider 失败"
// @Failure 504 {object} util.ErrorResponse "provider 超时"
// @Router /api/ai/flashcards [post]
func (c *StudyController) Flashcards(ctx *gin.Context) {
	var req FlashcardsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	result, err := c.StudyService.Flashcards(ctx.Request.Context(), req.Topic, req.Count)
	if err != nil {
		respondError(ctx, err, "Failed to generate flashcards")
		return
	}

	util.Success(ctx, gin.H{
		"topic":      req.Topic,
		"flashcards": result.Raw,
		"cards":      result.Cards,
		"count":      result.Count,
		"powered_by": c.PoweredBy,
	})
}

// GenerateQuiz godoc
// @Summary 生成测验
// @Description 无法解析为题目数组时 questions 为原始文本并带 raw=true
// @Tags AI
// @Accept json
// @Produce json
// @Param body body QuizRequest true "主题与难度（easy|medium|hard）"
// @Success 200 {object} object "success, topic, difficulty, questions"
// @Failure 400 {object} util.ErrorResponse "参数错误"
// @Failure 500 {object} util.ErrorResponse "provider 失败"
// @Failure 504 {object} util.ErrorResponse "provider 超时"
// @Router /api/ai/generate-quiz [post]
func (c *StudyController) GenerateQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	result, err := c.StudyService.Quiz(ctx.Request.Context(), req.Topic, req.Difficulty)
	if err != nil {
		respondError(ctx, err, "Failed to generate quiz")
		return
	}

	if !result.Parsed {
		util.Success(ctx, gin.H{
			"topic":      req.Topic,
			"difficulty": result.Difficulty,
			"questions":  result.Raw,
			"raw":        true,
		})
		return
	}

	util.Success(ctx, gin.H{
		"topic":      req.Topic,
		"difficulty": result.Difficulty,
		"questions":  result.Questions,
	})
}
