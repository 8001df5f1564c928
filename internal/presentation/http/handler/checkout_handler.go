package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mwirigi/salepoint-api/internal/application/service"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/request"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/response"
)

// CheckoutHandler submits the POS cart as a sale
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout handles submitting the cart. The created sale, including the
// backend-assigned invoice number, comes back in the response.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if !bindJSON(c, &req) {
			return
		}
	}

	doc, err := h.checkoutService.Checkout(c.Request.Context(), *userID, req.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", doc)
}
