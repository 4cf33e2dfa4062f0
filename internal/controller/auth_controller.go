package controller

import (
	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest defines model for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary 注册新用户
// @Description 创建账号并返回 30 天有效的 JWT
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 200 {object} object "success, token, user"
// @Failure 400 {object} util.ErrorResponse "缺少字段"
// @Failure 409 {object} util.ErrorResponse "邮箱已被注册"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "All fields are required")
		return
	}

	user, token, err := c.AuthService.Register(ctx.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(ctx, err, "Registration failed")
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户身份并返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户登录凭据"
// @Success 200 {object} object "success, token, user"
// @Failure 400 {object} util.ErrorResponse "凭据无效"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrInvalidCredentials.Error())
		return
	}

	user, token, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(ctx, err, "Login failed")
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// Me godoc
// @Summary 获取当前用户
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} object "success, user"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 404 {object} util.ErrorResponse "用户不存在"
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Access token required")
		return
	}

	user, err := c.AuthService.GetUser(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, err, "Failed to fetch user")
		return
	}

	util.Success(ctx, gin.H{"user": user.Public()})
}
