package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
)

// DocumentService proxies the list-row actions on submitted documents. The
// backend owns the records; this side only relays delete and status calls.
type DocumentService struct {
	documents gateway.DocumentGateway
}

// NewDocumentService creates a new document service
func NewDocumentService(documents gateway.DocumentGateway) *DocumentService {
	return &DocumentService{documents: documents}
}

// Delete removes a document upstream.
func (s *DocumentService) Delete(ctx context.Context, docType enum.DocumentType, id uuid.UUID) error {
	return s.documents.DeleteDocument(ctx, docType, id)
}

// UpdateStatus updates a document's status upstream.
func (s *DocumentService) UpdateStatus(ctx context.Context, docType enum.DocumentType, id uuid.UUID, status enum.DocumentStatus) error {
	return s.documents.UpdateDocumentStatus(ctx, docType, id, status)
}
