package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmpanasiti/rda-platform-api/internal/apierror"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

type MyReportHandler struct{ svc service.MyReportService }

func NewMyReportHandler(svc service.MyReportService) *MyReportHandler {
	return &MyReportHandler{svc: svc}
}

func (h *MyReportHandler) ActiveVehicles(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	resp, err := h.svc.ActiveVehicles(c.Request.Context(), branchID, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyReportHandler) VehiclesWithExpenses(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	var fee *float64
	if raw := c.Query("fee"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid fee."))
			return
		}
		fee = &f
	}
	resp, err := h.svc.VehiclesWithExpenses(c.Request.Context(), branchID, fee, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyReportHandler) UsersWithExpenses(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	resp, err := h.svc.UsersWithExpenses(c.Request.Context(), branchID, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
