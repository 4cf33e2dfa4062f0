package util

import (
	"errors"
	"study_buddy_backend/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "user"

type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func GenerateJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	return GenerateJWTAt(user, secret, expiration, time.Now())
}

// GenerateJWTAt 以 issuedAt 为签发时间生成令牌
func GenerateJWTAt(user *model.User, secret string, expiration time.Duration, issuedAt time.Time) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("cannot issue token without user id")
	}
	if secret == "" {
		return "", errors.New("cannot issue token without signing secret")
	}

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	return ParseJWTAt(tokenString, secret, time.Now())
}

// ParseJWTAt 以 at 作为当前时间校验令牌，任何失败都归为 ErrUnauthenticated
func ParseJWTAt(tokenString, secret string, at time.Time) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return at }),
	)
	if err != nil {
		return nil, errors.Join(ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrUnauthenticated
	}

	return claims, nil
}

func SetUserInContext(c *gin.Context, claims *Claims) {
	c.Set(userContextKey, claims)
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
