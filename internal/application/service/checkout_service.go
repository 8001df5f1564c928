package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
	"github.com/mwirigi/salepoint-api/internal/logger"
	"github.com/mwirigi/salepoint-api/pkg/apperror"
)

// CheckoutService turns the session cart into a completed sale. POS is
// immediate-payment-only: the sale goes upstream as completed/paid with the
// paid amount equal to the grand total. One checkout per cart at a time;
// failure leaves the cart exactly as it was.
type CheckoutService struct {
	sessions  *SessionManager
	documents gateway.DocumentGateway
	catalog   *CatalogService
	log       zerolog.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(sessions *SessionManager, documents gateway.DocumentGateway, catalog *CatalogService) *CheckoutService {
	return &CheckoutService{
		sessions:  sessions,
		documents: documents,
		catalog:   catalog,
		log:       logger.WithComponent("checkout"),
	}
}

// Checkout submits the cart as a sale. On success the cart is cleared, the
// cached catalog is refreshed to pick up the backend's stock decrement, and
// the backend-assigned invoice number comes back for display and printing.
// On failure the cart is untouched and the error is surfaced; no retry.
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, paymentMethod string) (*entity.Document, error) {
	cart := s.sessions.Get(userID).Cart

	view, err := cart.BeginCheckout()
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCartEmpty):
			return nil, apperror.ErrEmptyCart
		case errors.Is(err, entity.ErrCheckoutInFlight):
			return nil, apperror.ErrCheckoutInFlight
		}
		return nil, err
	}

	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	items := make([]gateway.DocumentItemInput, len(view.Items))
	for i, item := range view.Items {
		items[i] = gateway.DocumentItemInput{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitAmount: item.UnitPrice,
			Tax:        item.Tax,
		}
	}

	input := &gateway.DocumentInput{
		Type:          enum.DocumentTypeSale,
		PartyID:       view.CustomerID, // nil becomes walk-in upstream
		Date:          time.Now(),
		Status:        enum.DocumentStatusCompleted,
		PaymentStatus: enum.PaymentStatusPaid,
		Subtotal:      view.Subtotal,
		TaxTotal:      view.TaxTotal,
		DiscountTotal: view.Discount,
		GrandTotal:    view.GrandTotal,
		PaidAmount:    view.GrandTotal,
		PaymentMethod: paymentMethod,
		Notes:         view.Note,
		Items:         items,
	}

	doc, err := s.documents.CreateDocument(ctx, input)
	if err != nil {
		cart.EndCheckout(false)
		return nil, err
	}

	cart.EndCheckout(true)

	// Stock was decremented upstream; refresh the cached catalog so the POS
	// grid reflects it. The sale already succeeded, so a refresh failure is
	// only logged.
	if err := s.catalog.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog refresh after checkout failed")
	}

	return doc, nil
}
