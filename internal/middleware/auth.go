package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/apierror"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token: the actor's
// id and role, plus the registered expiry. Authorization is stateless — there
// is no revocation list, so every request re-validates the token.
type JWTClaims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Actor is the authenticated caller as seen by the service layer.
type Actor struct {
	ID   uuid.UUID
	Role model.Role
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Invalid or expired token"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose token role is not in the allowed list.
// An empty list means "token validity only": any authenticated role passes.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("You have no access to this resource."))
			return
		}
		if len(allowed) > 0 && !allowed[model.Role(claims.Role)] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("You have no access to this resource."))
			return
		}
		c.Next()
	}
}

// GetActor retrieves the authenticated caller from the Gin context. The
// boolean is false when the token's subject is not a well-formed id.
func GetActor(c *gin.Context) (Actor, bool) {
	claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
	if !ok {
		return Actor{}, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Actor{}, false
	}
	return Actor{ID: id, Role: model.Role(claims.Role)}, true
}
