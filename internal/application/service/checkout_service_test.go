package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/pkg/apperror"
)

func saleProduct(sellingPrice int64) entity.Product {
	return entity.Product{
		ID:           uuid.New(),
		Name:         "Item",
		Quantity:     5,
		SellingPrice: sellingPrice,
		TaxRate:      16,
	}
}

func TestCheckout_SubmitsCompletedPaidSale(t *testing.T) {
	product := saleProduct(10000)
	catalog, _ := newTestCatalog(product)
	documents := &fakeDocumentGateway{}
	sessions := NewSessionManager(16)
	svc := NewCheckoutService(sessions, documents, catalog)

	userID := uuid.New()
	cart := sessions.Get(userID).Cart
	cart.AddItem(&product, 2)
	cart.SetDiscount(500)

	doc, err := svc.Checkout(context.Background(), userID, "")
	if err != nil {
		t.Fatal(err)
	}
	if doc.InvoiceNumber != "INV-001" {
		t.Errorf("expected backend invoice number relayed, got %q", doc.InvoiceNumber)
	}

	input := documents.lastInput
	if input.Type != enum.DocumentTypeSale {
		t.Errorf("expected sale, got %v", input.Type)
	}
	if input.Status != enum.DocumentStatusCompleted || input.PaymentStatus != enum.PaymentStatusPaid {
		t.Error("checkout must submit a completed, paid sale")
	}
	if input.PaymentMethod != "cash" {
		t.Errorf("empty payment method should default to cash, got %q", input.PaymentMethod)
	}
	// subtotal 200.00, tax 32.00, discount 5.00 -> grand 227.00, fully paid
	if input.GrandTotal != 227.00 {
		t.Errorf("expected grand total 227.00, got %v", input.GrandTotal)
	}
	if input.PaidAmount != input.GrandTotal {
		t.Errorf("paid amount must equal grand total, got %v", input.PaidAmount)
	}
	if len(input.Items) != 1 || input.Items[0].Tax != 32.00 {
		t.Errorf("expected per-item tax 32.00, got %+v", input.Items)
	}
}

func TestCheckout_SuccessClearsCartAndRefreshesCatalog(t *testing.T) {
	product := saleProduct(100)
	catalog, catalogFake := newTestCatalog(product)
	documents := &fakeDocumentGateway{}
	sessions := NewSessionManager(0)
	svc := NewCheckoutService(sessions, documents, catalog)

	userID := uuid.New()
	sessions.Get(userID).Cart.AddItem(&product, 1)

	if _, err := svc.Checkout(context.Background(), userID, "card"); err != nil {
		t.Fatal(err)
	}

	if sessions.Get(userID).Cart.Len() != 0 {
		t.Error("cart must be cleared after a successful checkout")
	}
	if catalogFake.listCalls != 1 {
		t.Errorf("expected one catalog refresh, got %d list calls", catalogFake.listCalls)
	}
}

func TestCheckout_FailureLeavesCartIntact(t *testing.T) {
	product := saleProduct(100)
	catalog, catalogFake := newTestCatalog(product)
	documents := &fakeDocumentGateway{err: apperror.NewRemoteError(422, "Insufficient stock")}
	sessions := NewSessionManager(0)
	svc := NewCheckoutService(sessions, documents, catalog)

	userID := uuid.New()
	cart := sessions.Get(userID).Cart
	cart.AddItem(&product, 3)

	_, err := svc.Checkout(context.Background(), userID, "")
	if err == nil {
		t.Fatal("expected checkout to fail")
	}
	if !apperror.IsRemote(err) {
		t.Errorf("expected the backend rejection to surface, got %v", err)
	}
	if cart.Len() != 1 || cart.View().Items[0].Quantity != 3 {
		t.Error("failed checkout must leave the cart untouched")
	}
	if catalogFake.listCalls != 0 {
		t.Error("failed checkout must not refresh the catalog")
	}

	// The cart stays usable: a retry goes through once the backend accepts.
	documents.err = nil
	if _, err := svc.Checkout(context.Background(), userID, ""); err != nil {
		t.Errorf("retry after failure should succeed, got %v", err)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	catalog, _ := newTestCatalog()
	documents := &fakeDocumentGateway{}
	sessions := NewSessionManager(0)
	svc := NewCheckoutService(sessions, documents, catalog)

	_, err := svc.Checkout(context.Background(), uuid.New(), "")
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr != apperror.ErrEmptyCart {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}
	if documents.createCalls != 0 {
		t.Error("empty cart must not reach the backend")
	}
}

func TestCheckout_SecondCheckoutConflicts(t *testing.T) {
	product := saleProduct(100)
	catalog, _ := newTestCatalog(product)
	documents := &fakeDocumentGateway{}
	sessions := NewSessionManager(0)
	svc := NewCheckoutService(sessions, documents, catalog)

	userID := uuid.New()
	cart := sessions.Get(userID).Cart
	cart.AddItem(&product, 1)

	// Hold the in-flight guard as a concurrent checkout would.
	if _, err := cart.BeginCheckout(); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Checkout(context.Background(), userID, "")
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr != apperror.ErrCheckoutInFlight {
		t.Errorf("expected ErrCheckoutInFlight, got %v", err)
	}
	if documents.createCalls != 0 {
		t.Error("a conflicting checkout must not reach the backend")
	}
}

func TestCheckout_WalkInCustomer(t *testing.T) {
	product := saleProduct(100)
	catalog, _ := newTestCatalog(product)
	documents := &fakeDocumentGateway{}
	sessions := NewSessionManager(0)
	svc := NewCheckoutService(sessions, documents, catalog)

	userID := uuid.New()
	sessions.Get(userID).Cart.AddItem(&product, 1)

	if _, err := svc.Checkout(context.Background(), userID, ""); err != nil {
		t.Fatal(err)
	}
	if documents.lastInput.PartyID != nil {
		t.Error("no customer selected should submit a nil party")
	}
}
