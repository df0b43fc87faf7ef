package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmpanasiti/rda-platform-api/internal/apierror"
	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

type UsersHandler struct {
	svc      service.UserService
	licenses service.DriverLicenseService
}

func NewUsersHandler(svc service.UserService, licenses service.DriverLicenseService) *UsersHandler {
	return &UsersHandler{svc: svc, licenses: licenses}
}

func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateFirstSuperadmin bootstraps the very first superadmin. Open only while
// no superadmin exists.
func (h *UsersHandler) CreateFirstSuperadmin(c *gin.Context) {
	var req dto.FirstSuperadminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateFirstSuperadmin(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UsersHandler) List(c *gin.Context) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UsersHandler) Activate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Activate(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Deactivate(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Driver licenses ──────────────────────────────────────────────────────────
// Licenses are strictly personal: even admins may only touch their own, the
// path user_id has to match the token identity.

func (h *UsersHandler) licenseOwner(c *gin.Context) (middleware.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return middleware.Actor{}, false
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return middleware.Actor{}, false
	}
	if userID != actor.ID {
		c.JSON(http.StatusForbidden, apierror.New("You have no access to upload this document."))
		return middleware.Actor{}, false
	}
	return actor, true
}

func (h *UsersHandler) UploadLicense(c *gin.Context) {
	actor, ok := h.licenseOwner(c)
	if !ok {
		return
	}
	var req dto.DriverLicenseUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid form: "+err.Error()))
		return
	}
	if !runValidation(c, &req) {
		return
	}
	fileName, fileType, data, ok := formFile(c)
	if !ok {
		return
	}

	resp, err := h.licenses.Upload(c.Request.Context(), actor.ID, req.ExpirationDate.Time, fileName, fileType, data)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UsersHandler) GetLicense(c *gin.Context) {
	if _, ok := h.licenseOwner(c); !ok {
		return
	}
	licenseID, ok := pathID(c, "license_id")
	if !ok {
		return
	}
	resp, err := h.licenses.GetByID(c.Request.Context(), licenseID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) DownloadLicense(c *gin.Context) {
	if _, ok := h.licenseOwner(c); !ok {
		return
	}
	licenseID, ok := pathID(c, "license_id")
	if !ok {
		return
	}
	path, err := h.licenses.DownloadPath(c.Request.Context(), licenseID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.File(path)
}
