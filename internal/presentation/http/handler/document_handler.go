package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/application/service"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/request"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/response"
)

// DocumentHandler relays list-row actions on submitted documents upstream
type DocumentHandler struct {
	documentService *service.DocumentService
	docType         enum.DocumentType
}

// NewDocumentHandler creates a handler bound to one document type
func NewDocumentHandler(documentService *service.DocumentService, docType enum.DocumentType) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		docType:         docType,
	}
}

// Delete handles deleting a document upstream
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), h.docType, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document deleted", nil)
}

// UpdateStatus handles updating a document's status upstream
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req request.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status := enum.ParseDocumentStatus(req.Status)
	if err := h.documentService.UpdateStatus(c.Request.Context(), h.docType, id, status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Status updated", nil)
}
