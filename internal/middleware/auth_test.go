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

	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, secret string, role model.Role, dur time.Duration) string {
	t.Helper()
	claims := JWTClaims{
		UserID: uuid.New().String(),
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(dur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func protectedRouter(roles ...model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(testSecret), RequireRole(roles...), func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": string(actor.Role)})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	w := doGet(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, model.RoleAdmin, -time.Hour)
	w := doGet(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "another_secret_another_secret_!!", model.RoleAdmin, time.Hour)
	w := doGet(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	token := signToken(t, testSecret, model.RoleDriver, time.Hour)
	w := doGet(protectedRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(model.RoleDriver))
}

func TestRequireRoleBlocksOutsiders(t *testing.T) {
	r := protectedRouter(model.AdminRoles...)

	w := doGet(r, signToken(t, testSecret, model.RoleDriver, time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You have no access to this resource.")

	w = doGet(r, signToken(t, testSecret, model.RoleAdmin, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleEmptyListAdmitsAnyValidToken(t *testing.T) {
	r := protectedRouter()
	w := doGet(r, signToken(t, testSecret, model.RoleProvider, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}
