package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
	"github.com/mwirigi/salepoint-api/pkg/apperror"
)

// DraftService is the document builder: one generic implementation serving
// the purchase, sale and purchase-return forms, parameterized by document
// type instead of duplicated per type. Drafts live in the session; submitting
// a valid draft issues exactly one upstream create call.
type DraftService struct {
	sessions  *SessionManager
	catalog   *CatalogService
	documents gateway.DocumentGateway
}

// NewDraftService creates a new draft service
func NewDraftService(sessions *SessionManager, catalog *CatalogService, documents gateway.DocumentGateway) *DraftService {
	return &DraftService{
		sessions:  sessions,
		catalog:   catalog,
		documents: documents,
	}
}

// Create starts a new draft of the given type with one blank row.
func (s *DraftService) Create(userID uuid.UUID, docType enum.DocumentType) *entity.DraftView {
	draft := entity.NewDraft(docType)
	s.sessions.Get(userID).AddDraft(draft)
	return draft.View()
}

// Get returns a draft snapshot.
func (s *DraftService) Get(userID, draftID uuid.UUID) (*entity.DraftView, error) {
	draft, err := s.find(userID, draftID)
	if err != nil {
		return nil, err
	}
	return draft.View(), nil
}

// List returns snapshots of all drafts in the session.
func (s *DraftService) List(userID uuid.UUID) []*entity.DraftView {
	drafts := s.sessions.Get(userID).Drafts()
	views := make([]*entity.DraftView, len(drafts))
	for i, draft := range drafts {
		views[i] = draft.View()
	}
	return views
}

// Discard drops a draft without submitting it.
func (s *DraftService) Discard(userID, draftID uuid.UUID) error {
	if _, err := s.find(userID, draftID); err != nil {
		return err
	}
	s.sessions.Get(userID).RemoveDraft(draftID)
	return nil
}

// AppendRow adds a blank row to the draft.
func (s *DraftService) AppendRow(userID, draftID uuid.UUID) (*entity.DraftView, error) {
	draft, err := s.find(userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := draft.AppendRow(); err != nil {
		return nil, mapDraftError(err)
	}
	return draft.View(), nil
}

// RemoveRow deletes the row at index. An eventual empty row list is caught
// at submit time, not here.
func (s *DraftService) RemoveRow(userID, draftID uuid.UUID, index int) (*entity.DraftView, error) {
	draft, err := s.find(userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := draft.RemoveRow(index); err != nil {
		return nil, mapDraftError(err)
	}
	return draft.View(), nil
}

// SetRowProduct selects a product for a row, defaulting the unit amount from
// the catalog price for the draft's document type.
func (s *DraftService) SetRowProduct(ctx context.Context, userID, draftID uuid.UUID, index int, productID uuid.UUID) (*entity.DraftView, error) {
	draft, err := s.find(userID, draftID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := draft.SetRowProduct(index, product); err != nil {
		return nil, mapDraftError(err)
	}
	return draft.View(), nil
}

// UpdateRow overrides a row's quantity, unit amount and tax rate.
func (s *DraftService) UpdateRow(userID, draftID uuid.UUID, index, quantity int, unitAmount, taxRate float64) (*entity.DraftView, error) {
	draft, err := s.find(userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := draft.UpdateRow(index, quantity, entity.Cents(unitAmount), taxRate); err != nil {
		return nil, mapDraftError(err)
	}
	return draft.View(), nil
}

// HeaderInput carries header-level fields in decimal amounts.
type HeaderInput struct {
	PartyID       *uuid.UUID
	Date          time.Time
	Status        enum.DocumentStatus
	PaymentStatus enum.PaymentStatus
	ShippingCost  float64
	DiscountTotal float64
	PaidAmount    float64
	Note          string
}

// SetHeader replaces the draft header.
func (s *DraftService) SetHeader(userID, draftID uuid.UUID, input HeaderInput) (*entity.DraftView, error) {
	draft, err := s.find(userID, draftID)
	if err != nil {
		return nil, err
	}

	header := entity.DraftHeader{
		PartyID:       input.PartyID,
		Date:          input.Date,
		Status:        input.Status,
		PaymentStatus: input.PaymentStatus,
		ShippingCost:  entity.Cents(input.ShippingCost),
		DiscountTotal: entity.Cents(input.DiscountTotal),
		PaidAmount:    entity.Cents(input.PaidAmount),
		Note:          input.Note,
	}
	if err := draft.SetHeader(header); err != nil {
		return nil, mapDraftError(err)
	}
	return draft.View(), nil
}

// Submit validates the draft and creates the document upstream. Validation
// failure blocks the network call entirely. A successful submit discards the
// draft; a rejected one keeps it populated, back in editing, with the error
// recorded.
func (s *DraftService) Submit(ctx context.Context, userID, draftID uuid.UUID) (*entity.Document, error) {
	draft, err := s.find(userID, draftID)
	if err != nil {
		return nil, err
	}

	view := draft.View()
	if fieldErrors := validateDraft(view); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if err := draft.BeginSubmit(); err != nil {
		return nil, mapDraftError(err)
	}

	items := make([]gateway.DocumentItemInput, len(view.Rows))
	for i, row := range view.Rows {
		items[i] = gateway.DocumentItemInput{
			ProductID:  *row.ProductID,
			Quantity:   row.Quantity,
			UnitAmount: row.UnitAmount,
			Tax:        row.Tax,
		}
	}

	input := &gateway.DocumentInput{
		Type:          view.Type,
		PartyID:       view.PartyID,
		Date:          view.Date,
		Status:        view.Status,
		PaymentStatus: view.PaymentStatus,
		Subtotal:      view.Subtotal,
		TaxTotal:      view.TaxTotal,
		DiscountTotal: view.DiscountTotal,
		ShippingCost:  view.ShippingCost,
		GrandTotal:    view.GrandTotal,
		PaidAmount:    view.PaidAmount,
		Notes:         view.Note,
		Items:         items,
	}

	doc, err := s.documents.CreateDocument(ctx, input)
	if err != nil {
		draft.FinishSubmit(err)
		return nil, err
	}

	draft.FinishSubmit(nil)
	s.sessions.Get(userID).RemoveDraft(draftID)
	return doc, nil
}

func (s *DraftService) find(userID, draftID uuid.UUID) (*entity.Draft, error) {
	draft, ok := s.sessions.Get(userID).Draft(draftID)
	if !ok {
		return nil, apperror.NewNotFoundError("Draft")
	}
	return draft, nil
}

func mapDraftError(err error) error {
	if err == entity.ErrDraftSubmitting {
		return apperror.NewAppError(http.StatusConflict, "Draft is being submitted")
	}
	return apperror.NewBadRequestError(err.Error())
}

// validateDraft applies the pre-submit rules: party and date required, at
// least one row, every row a product with quantity >= 1 and a non-negative
// amount, paid amount >= 0. Errors are field-scoped.
func validateDraft(view *entity.DraftView) []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	partyField := view.Type.PartyField()
	if view.PartyID == nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   partyField,
			Message: "A customer or supplier is required",
		})
	}
	if view.Date.IsZero() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "date",
			Message: "Date is required",
		})
	}
	if len(view.Rows) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "items",
			Message: "At least one item is required",
		})
	}
	for i, row := range view.Rows {
		if row.ProductID == nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].product_id", i),
				Message: "Product is required",
			})
		}
		if row.Quantity < 1 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "Quantity must be at least 1",
			})
		}
		if row.UnitAmount < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].%s", i, view.Type.AmountField()),
				Message: "Amount cannot be negative",
			})
		}
	}
	if view.PaidAmount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "paid_amount",
			Message: "Paid amount cannot be negative",
		})
	}

	return fieldErrors
}
