package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

type SinistersHandler struct{ svc service.SinisterService }

func NewSinistersHandler(svc service.SinisterService) *SinistersHandler {
	return &SinistersHandler{svc: svc}
}

func (h *SinistersHandler) Create(c *gin.Context) {
	var req dto.SinisterRequest
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

func (h *SinistersHandler) List(c *gin.Context) {
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

func (h *SinistersHandler) Get(c *gin.Context) {
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

func (h *SinistersHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSinisterRequest
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

func (h *SinistersHandler) Delete(c *gin.Context) {
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

func (h *SinistersHandler) UploadFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	fileName, _, data, ok := formFile(c)
	if !ok {
		return
	}
	if err := h.svc.UploadFile(c.Request.Context(), id, fileName, data); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *SinistersHandler) DownloadFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.FilePath(c.Request.Context(), id, c.Param("file_name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.File(path)
}

func (h *SinistersHandler) DeleteFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteFile(c.Request.Context(), id, c.Param("file_name")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
