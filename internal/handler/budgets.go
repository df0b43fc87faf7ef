package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

type BudgetsHandler struct{ svc service.BudgetService }

func NewBudgetsHandler(svc service.BudgetService) *BudgetsHandler {
	return &BudgetsHandler{svc: svc}
}

func (h *BudgetsHandler) Create(c *gin.Context) {
	var req dto.BudgetRequest
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

func (h *BudgetsHandler) List(c *gin.Context) {
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

func (h *BudgetsHandler) Get(c *gin.Context) {
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

func (h *BudgetsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBudgetRequest
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

func (h *BudgetsHandler) Delete(c *gin.Context) {
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

func (h *BudgetsHandler) Upload(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	fileName, _, data, ok := formFile(c)
	if !ok {
		return
	}
	if err := h.svc.UploadAllocationFile(c.Request.Context(), id, fileName, data); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *BudgetsHandler) Download(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.AllocationFilePath(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.File(path)
}
