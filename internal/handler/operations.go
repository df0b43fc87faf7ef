package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

type OperationsHandler struct{ svc service.OperationsService }

func NewOperationsHandler(svc service.OperationsService) *OperationsHandler {
	return &OperationsHandler{svc: svc}
}

// ── Requests ─────────────────────────────────────────────────────────────────

func (h *OperationsHandler) ListRequests(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	resp, err := h.svc.BranchRequests(c.Request.Context(), branchID, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperationsHandler) GetRequest(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}
	resp, err := h.svc.BranchRequestByID(c.Request.Context(), branchID, requestID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperationsHandler) CreateRequest(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	var req dto.ServiceRequestCreate
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateRequest(c.Request.Context(), branchID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OperationsHandler) ApproveRequest(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}
	resp, err := h.svc.ApproveRequest(c.Request.Context(), actor, branchID, requestID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperationsHandler) UpdateRequest(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}
	var req dto.ServiceRequestUpdate
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateRequest(c.Request.Context(), branchID, requestID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperationsHandler) DeleteRequest(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteRequest(c.Request.Context(), branchID, requestID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OperationsHandler) UploadTireImage(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}
	fileName, _, data, ok := formFile(c)
	if !ok {
		return
	}
	if err := h.svc.UploadTireImage(c.Request.Context(), branchID, requestID, fileName, data); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *OperationsHandler) DownloadTireImage(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}
	path, err := h.svc.TireImagePath(c.Request.Context(), branchID, requestID, c.Param("file_name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.File(path)
}

func (h *OperationsHandler) DeleteTireImage(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTireImage(c.Request.Context(), branchID, requestID, c.Param("file_name")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Sinisters ────────────────────────────────────────────────────────────────

func (h *OperationsHandler) ListSinisters(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	resp, err := h.svc.BranchSinisters(c.Request.Context(), branchID, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperationsHandler) GetSinister(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	sinisterID, ok := pathID(c, "sinister_id")
	if !ok {
		return
	}
	resp, err := h.svc.BranchSinisterByID(c.Request.Context(), branchID, sinisterID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperationsHandler) CreateSinister(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	var req dto.SinisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateSinister(c.Request.Context(), branchID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OperationsHandler) ApproveSinister(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	sinisterID, ok := pathID(c, "sinister_id")
	if !ok {
		return
	}
	resp, err := h.svc.ApproveSinister(c.Request.Context(), actor, branchID, sinisterID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperationsHandler) UpdateSinister(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	sinisterID, ok := pathID(c, "sinister_id")
	if !ok {
		return
	}
	var req dto.UpdateSinisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateSinister(c.Request.Context(), branchID, sinisterID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperationsHandler) DeleteSinister(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	sinisterID, ok := pathID(c, "sinister_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSinister(c.Request.Context(), branchID, sinisterID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OperationsHandler) UploadSinisterFile(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	sinisterID, ok := pathID(c, "sinister_id")
	if !ok {
		return
	}
	fileName, _, data, ok := formFile(c)
	if !ok {
		return
	}
	if err := h.svc.UploadSinisterFile(c.Request.Context(), branchID, sinisterID, fileName, data); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *OperationsHandler) DownloadSinisterFile(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	sinisterID, ok := pathID(c, "sinister_id")
	if !ok {
		return
	}
	path, err := h.svc.SinisterFilePath(c.Request.Context(), branchID, sinisterID, c.Param("file_name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.File(path)
}

func (h *OperationsHandler) DeleteSinisterFile(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	sinisterID, ok := pathID(c, "sinister_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSinisterFile(c.Request.Context(), branchID, sinisterID, c.Param("file_name")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
