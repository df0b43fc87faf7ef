package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

// Stubs embed the interface: only the methods a test exercises are overridden.

type stubLicenseSvc struct {
	service.DriverLicenseService
	getByIDCalls int
}

func (s *stubLicenseSvc) GetByID(_ context.Context, _ uuid.UUID) (*dto.DriverLicenseResponse, error) {
	s.getByIDCalls++
	return &dto.DriverLicenseResponse{ID: uuid.New().String()}, nil
}

func withClaims(actorID uuid.UUID, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &middleware.JWTClaims{
			UserID: actorID.String(),
			Role:   string(role),
		})
	}
}

func TestLicenseRoutesAreOwnerOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New()
	otherID := uuid.New()

	licenses := &stubLicenseSvc{}
	h := NewUsersHandler(nil, licenses)

	r := gin.New()
	r.GET("/v1/users/:id/driver-licenses/:license_id", withClaims(actorID, model.RoleAdmin), h.GetLicense)

	// Even an admin cannot read someone else's license.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+otherID.String()+"/driver-licenses/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You have no access to upload this document.")
	assert.Zero(t, licenses.getByIDCalls)

	// The owner passes through to the service.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/users/"+actorID.String()+"/driver-licenses/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, licenses.getByIDCalls)
}

func TestLicenseRouteRejectsMalformedUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUsersHandler(nil, &stubLicenseSvc{})

	r := gin.New()
	r.GET("/v1/users/:id/driver-licenses/:license_id", withClaims(uuid.New(), model.RoleDriver), h.GetLicense)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/not-a-uuid/driver-licenses/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
