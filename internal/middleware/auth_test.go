package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/util"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": util.GetUserFromContext(c).UserID})
	})
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	user := &model.User{UUIDBase: model.UUIDBase{ID: "u-1"}, Name: "ada"}
	tok, err := util.GenerateJWT(user, secret, time.Hour)
	require.NoError(t, err)

	w := doGet(protectedRouter(), "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u-1", body["id"])
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	user := &model.User{UUIDBase: model.UUIDBase{ID: "u-1"}, Name: "ada"}
	expired, err := util.GenerateJWTAt(user, secret, time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, err := util.GenerateJWT(user, "other-secret", time.Hour)
	require.NoError(t, err)

	cases := map[string]string{
		"missing":      "",
		"no scheme":    expired,
		"empty bearer": "Bearer ",
		"garbage":      "Bearer garbage",
		"expired":      "Bearer " + expired,
		"wrong secret": "Bearer " + foreign,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := doGet(protectedRouter(), header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body util.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Error)
		})
	}
}
