package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmpanasiti/rda-platform-api/internal/apierror"
	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

type VehiclesHandler struct{ svc service.VehicleService }

func NewVehiclesHandler(svc service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

func (h *VehiclesHandler) Create(c *gin.Context) {
	var req dto.VehicleRequest
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

func (h *VehiclesHandler) List(c *gin.Context) {
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

func (h *VehiclesHandler) Get(c *gin.Context) {
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

func (h *VehiclesHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) Delete(c *gin.Context) {
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

func (h *VehiclesHandler) Activate(c *gin.Context) {
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

func (h *VehiclesHandler) Deactivate(c *gin.Context) {
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

// ── Attached documents ───────────────────────────────────────────────────────
// The doc segment names the slot: policy, idcard, auth_idcard or title.

func vehicleDoc(c *gin.Context) (service.VehicleDoc, bool) {
	doc, ok := service.ParseVehicleDoc(c.Param("doc"))
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("Unknown document type."))
		return "", false
	}
	return doc, true
}

func (h *VehiclesHandler) UploadDoc(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, ok := vehicleDoc(c)
	if !ok {
		return
	}
	fileName, _, data, ok := formFile(c)
	if !ok {
		return
	}
	if err := h.svc.UploadDoc(c.Request.Context(), id, doc, fileName, data); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *VehiclesHandler) DownloadDoc(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, ok := vehicleDoc(c)
	if !ok {
		return
	}
	path, err := h.svc.DocPath(c.Request.Context(), id, doc, c.Param("file_name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.File(path)
}

func (h *VehiclesHandler) DeleteDoc(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, ok := vehicleDoc(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteDoc(c.Request.Context(), id, doc, c.Param("file_name")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
