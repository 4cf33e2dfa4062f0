package middleware

import (
	"strings"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 校验 Authorization: Bearer <token>，通过后把 Claims 放入上下文
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		if authHeader == "" || tokenString == "" || tokenString == authHeader {
			util.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.Error(err))
			util.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		util.SetUserInContext(c, claims)
		c.Next()
	}
}
