package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

type MyFleetHandler struct{ svc service.MyFleetService }

func NewMyFleetHandler(svc service.MyFleetService) *MyFleetHandler {
	return &MyFleetHandler{svc: svc}
}

// ── Vehicles ─────────────────────────────────────────────────────────────────

func (h *MyFleetHandler) ListVehicles(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	resp, err := h.svc.Vehicles(c.Request.Context(), branchID, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyFleetHandler) GetVehicle(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	vehicleID, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}
	resp, err := h.svc.VehicleByID(c.Request.Context(), branchID, vehicleID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyFleetHandler) CreateVehicle(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	var req dto.MyFleetVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateVehicle(c.Request.Context(), branchID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MyFleetHandler) UpdateVehicle(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	vehicleID, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}
	var req dto.MyFleetVehicleUpdate
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateVehicle(c.Request.Context(), branchID, vehicleID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyFleetHandler) DeleteVehicle(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	vehicleID, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteVehicle(c.Request.Context(), branchID, vehicleID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MyFleetHandler) ActivateVehicle(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	vehicleID, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}
	resp, err := h.svc.ActivateVehicle(c.Request.Context(), branchID, vehicleID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyFleetHandler) DeactivateVehicle(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	vehicleID, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}
	resp, err := h.svc.DeactivateVehicle(c.Request.Context(), branchID, vehicleID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Users ────────────────────────────────────────────────────────────────────

func (h *MyFleetHandler) ListUsers(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	resp, err := h.svc.Users(c.Request.Context(), branchID, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyFleetHandler) GetUser(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	resp, err := h.svc.UserByID(c.Request.Context(), branchID, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyFleetHandler) CreateUser(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	var req dto.MyFleetUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateUser(c.Request.Context(), branchID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MyFleetHandler) UpdateUser(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req dto.MyFleetUserUpdate
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateUser(c.Request.Context(), branchID, userID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyFleetHandler) DeleteUser(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), branchID, userID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MyFleetHandler) ActivateUser(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	resp, err := h.svc.ActivateUser(c.Request.Context(), branchID, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyFleetHandler) DeactivateUser(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	resp, err := h.svc.DeactivateUser(c.Request.Context(), branchID, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
