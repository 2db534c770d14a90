package handler

import (
	"errors"
	"net/http"

	"storefront/internal/model"
	"storefront/internal/route"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler runs the public order submission flow.
type OrderHandler struct {
	submissionService *service.SubmissionService
}

// NewOrderHandler creates an order handler.
func NewOrderHandler(submissionService *service.SubmissionService) *OrderHandler {
	return &OrderHandler{submissionService: submissionService}
}

// Submit posts a draft through the submission flow. On acceptance the reply
// carries the created order and the confirmation route to navigate to; the
// order is already persisted by then.
func (h *OrderHandler) Submit(c *gin.Context) {
	var draft model.OrderDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order, err := h.submissionService.Submit(c.Request.Context(), draft)
	if err != nil {
		status, message := submissionError(err)
		c.JSON(status, gin.H{"error": message, "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":    order,
		"redirect": route.ConfirmationPath(order.ID),
	})
}

// Success echoes the confirmation id. There is deliberately no existence
// check against the order history; any id renders.
func (h *OrderHandler) Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orderId": c.Param("id")})
}

// submissionError maps flow failures to status codes: configuration problems
// are 503, stock exhaustion 409, unknown products 404, endpoint rejections
// and transport failures 502. All of them are retryable except the first
// two, which need an admin or a restock first.
func submissionError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrEndpointNotConfigured):
		return http.StatusServiceUnavailable, "Order submission is not configured yet"
	case errors.Is(err, service.ErrOutOfStock):
		return http.StatusConflict, "Product is out of stock"
	case errors.Is(err, service.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, service.ErrRejected):
		return http.StatusBadGateway, "Order was not accepted"
	default:
		return http.StatusBadGateway, "Failed to submit order"
	}
}
