package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

type MyBillsHandler struct{ svc service.MyBillsService }

func NewMyBillsHandler(svc service.MyBillsService) *MyBillsHandler {
	return &MyBillsHandler{svc: svc}
}

func (h *MyBillsHandler) List(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	resp, err := h.svc.Orders(c.Request.Context(), branchID, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyBillsHandler) Get(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	resp, err := h.svc.OrderByID(c.Request.Context(), branchID, orderID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyBillsHandler) Create(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	var req dto.PurchaseOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateOrder(c.Request.Context(), branchID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MyBillsHandler) Update(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	var req dto.UpdatePurchaseOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateOrder(c.Request.Context(), branchID, orderID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MyBillsHandler) Delete(c *gin.Context) {
	branchID, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(c.Request.Context(), branchID, orderID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
