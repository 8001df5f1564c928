package request

import "github.com/google/uuid"

// AddItemRequest adds a product to the POS cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"` // defaults to 1
}

// UpdateQuantityRequest sets a cart row's quantity; zero removes the row
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetCustomerRequest sets the cart's customer; null means walk-in
type SetCustomerRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`
}

// SetDiscountRequest sets the cart's flat discount
type SetDiscountRequest struct {
	Discount float64 `json:"discount" binding:"min=0"`
}

// SetNoteRequest sets the cart's free-text note
type SetNoteRequest struct {
	Note string `json:"note"`
}

// CheckoutRequest submits the cart as an immediate-payment sale
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}
