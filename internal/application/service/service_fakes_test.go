package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
)

type fakeDocumentGateway struct {
	createCalls int
	lastInput   *gateway.DocumentInput
	doc         *entity.Document
	err         error
}

func (f *fakeDocumentGateway) CreateDocument(_ context.Context, input *gateway.DocumentInput) (*entity.Document, error) {
	f.createCalls++
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	if f.doc != nil {
		return f.doc, nil
	}
	return &entity.Document{ID: uuid.New(), InvoiceNumber: "INV-001"}, nil
}

func (f *fakeDocumentGateway) DeleteDocument(_ context.Context, _ enum.DocumentType, _ uuid.UUID) error {
	return nil
}

func (f *fakeDocumentGateway) UpdateDocumentStatus(_ context.Context, _ enum.DocumentType, _ uuid.UUID, _ enum.DocumentStatus) error {
	return nil
}

type fakeCatalogGateway struct {
	products  []entity.Product
	listCalls int
	listErr   error
}

func (f *fakeCatalogGateway) ListProducts(_ context.Context, _ *gateway.ListParams) ([]entity.Product, int64, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.products, int64(len(f.products)), nil
}

func (f *fakeCatalogGateway) GetProduct(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, product := range f.products {
		if product.ID == id {
			p := product
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogGateway) ListContacts(_ context.Context, _ string, _ *gateway.ListParams) ([]entity.Contact, int64, error) {
	return nil, 0, nil
}

func newTestCatalog(products ...entity.Product) (*CatalogService, *fakeCatalogGateway) {
	fake := &fakeCatalogGateway{products: products}
	return NewCatalogService(fake, fake, 200), fake
}
