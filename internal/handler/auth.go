package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register godoc
// @Summary Sign up a super manager with their first organization and branch
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Exchange credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Info returns the profile behind the presented token.
func (h *AuthHandler) Info(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	resp, err := h.svc.CurrentUser(c.Request.Context(), actor)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Renew issues a fresh token with the same identity and role.
func (h *AuthHandler) Renew(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	resp, err := h.svc.Renew(actor)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
