package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": "gabo",
		"nivel":    "consultor",
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/perfil", JWTAuth(testSecret), func(c *gin.Context) {
		id, ok := UsuarioID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"usuario_id": id.String()})
	})
	return r
}

func getWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/perfil", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := newProtectedRouter()
	userID := uuid.NewString()

	t.Run("token valido", func(t *testing.T) {
		w := getWithToken(r, signToken(t, testSecret, userID, time.Hour))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID)
	})

	t.Run("sin header", func(t *testing.T) {
		w := getWithToken(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token expirado", func(t *testing.T) {
		w := getWithToken(r, signToken(t, testSecret, userID, -time.Minute))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("firma de otro secreto", func(t *testing.T) {
		w := getWithToken(r, signToken(t, "otro-secreto", userID, time.Hour))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user_id no uuid", func(t *testing.T) {
		w := getWithToken(r, signToken(t, testSecret, "no-es-uuid", time.Hour))
		assert.Equal(t, http.StatusInternalServerError, w.Code, "claims presentes pero id no parseable")
	})
}

func TestGetClaimsSinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))

	_, ok := UsuarioID(c)
	assert.False(t, ok)
}
