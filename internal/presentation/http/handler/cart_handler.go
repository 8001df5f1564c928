package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/application/service"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/request"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/response"
)

// CartHandler exposes the POS cart over HTTP
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles returning the current cart state
func (h *CartHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Cart retrieved successfully", h.cartService.View(*userID))
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddItemRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), *userID, req.ProductID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", view)
}

// UpdateQuantity handles setting a cart row's quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cartService.UpdateQuantity(*userID, itemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", view)
}

// RemoveItem handles deleting a cart row
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	view, err := h.cartService.RemoveItem(*userID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed", view)
}

// SetCustomer handles setting the cart customer
func (h *CartHandler) SetCustomer(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SetCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	response.OK(c, "Customer updated", h.cartService.SetCustomer(*userID, req.CustomerID))
}

// SetDiscount handles setting the cart discount
func (h *CartHandler) SetDiscount(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SetDiscountRequest
	if !bindJSON(c, &req) {
		return
	}

	response.OK(c, "Discount updated", h.cartService.SetDiscount(*userID, req.Discount))
}

// SetNote handles setting the cart note
func (h *CartHandler) SetNote(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SetNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	response.OK(c, "Note updated", h.cartService.SetNote(*userID, req.Note))
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Cart cleared", h.cartService.Clear(*userID))
}
