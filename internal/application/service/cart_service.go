package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/pkg/apperror"
)

// CartService exposes the POS cart operations for a session. Mutations are
// pure in-memory state changes; the only call that can fail against the
// backend is resolving a product when a line is added.
type CartService struct {
	sessions *SessionManager
	catalog  *CatalogService
}

// NewCartService creates a new cart service
func NewCartService(sessions *SessionManager, catalog *CatalogService) *CartService {
	return &CartService{
		sessions: sessions,
		catalog:  catalog,
	}
}

// View returns the current cart snapshot.
func (s *CartService) View(userID uuid.UUID) *entity.CartView {
	return s.sessions.Get(userID).Cart.View()
}

// AddItem resolves the product and adds it to the cart, merging into an
// existing row for the same product. No stock check happens here; the
// backend enforces sufficiency at checkout.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartView, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart := s.sessions.Get(userID).Cart
	cart.AddItem(product, quantity)
	return cart.View(), nil
}

// UpdateQuantity sets a row's quantity; zero or less removes the row.
func (s *CartService) UpdateQuantity(userID, itemID uuid.UUID, quantity int) (*entity.CartView, error) {
	cart := s.sessions.Get(userID).Cart
	if !cart.UpdateQuantity(itemID, quantity) {
		return nil, apperror.NewNotFoundError("Cart item")
	}
	return cart.View(), nil
}

// RemoveItem deletes a row from the cart.
func (s *CartService) RemoveItem(userID, itemID uuid.UUID) (*entity.CartView, error) {
	cart := s.sessions.Get(userID).Cart
	if !cart.RemoveItem(itemID) {
		return nil, apperror.NewNotFoundError("Cart item")
	}
	return cart.View(), nil
}

// SetCustomer sets the cart's customer reference; nil means walk-in.
func (s *CartService) SetCustomer(userID uuid.UUID, customerID *uuid.UUID) *entity.CartView {
	cart := s.sessions.Get(userID).Cart
	cart.SetCustomer(customerID)
	return cart.View()
}

// SetDiscount sets the cart's flat discount from a decimal amount.
func (s *CartService) SetDiscount(userID uuid.UUID, discount float64) *entity.CartView {
	cart := s.sessions.Get(userID).Cart
	cart.SetDiscount(entity.Cents(discount))
	return cart.View()
}

// SetNote sets the cart's free-text note.
func (s *CartService) SetNote(userID uuid.UUID, note string) *entity.CartView {
	cart := s.sessions.Get(userID).Cart
	cart.SetNote(note)
	return cart.View()
}

// Clear empties the cart manually. The session tax rate is preserved.
func (s *CartService) Clear(userID uuid.UUID) *entity.CartView {
	cart := s.sessions.Get(userID).Cart
	cart.Clear()
	return cart.View()
}
