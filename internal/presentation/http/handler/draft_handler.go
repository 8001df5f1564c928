package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/application/service"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/request"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/response"
)

// DraftHandler exposes the document builder over HTTP
type DraftHandler struct {
	draftService *service.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Create handles starting a new draft
func (h *DraftHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateDraftRequest
	if !bindJSON(c, &req) {
		return
	}

	docType, err := enum.ParseDocumentType(req.Type)
	if err != nil {
		response.BadRequest(c, "Invalid document type")
		return
	}

	response.Created(c, "Draft created", h.draftService.Create(*userID, docType))
}

// List handles listing the session's drafts
func (h *DraftHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Drafts retrieved successfully", h.draftService.List(*userID))
}

// Get handles returning one draft
func (h *DraftHandler) Get(c *gin.Context) {
	userID, draftID, ok := h.identify(c)
	if !ok {
		return
	}

	view, err := h.draftService.Get(*userID, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft retrieved successfully", view)
}

// Discard handles dropping a draft without submitting
func (h *DraftHandler) Discard(c *gin.Context) {
	userID, draftID, ok := h.identify(c)
	if !ok {
		return
	}

	if err := h.draftService.Discard(*userID, draftID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft discarded", nil)
}

// AppendRow handles adding a blank row
func (h *DraftHandler) AppendRow(c *gin.Context) {
	userID, draftID, ok := h.identify(c)
	if !ok {
		return
	}

	view, err := h.draftService.AppendRow(*userID, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Row added", view)
}

// RemoveRow handles deleting the row at an index
func (h *DraftHandler) RemoveRow(c *gin.Context) {
	userID, draftID, ok := h.identify(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid row index")
		return
	}

	view, err := h.draftService.RemoveRow(*userID, draftID, index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Row removed", view)
}

// SetRowProduct handles selecting a product for a row
func (h *DraftHandler) SetRowProduct(c *gin.Context) {
	userID, draftID, ok := h.identify(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid row index")
		return
	}

	var req request.SetRowProductRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.draftService.SetRowProduct(c.Request.Context(), *userID, draftID, index, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product selected", view)
}

// UpdateRow handles overriding a row's fields
func (h *DraftHandler) UpdateRow(c *gin.Context) {
	userID, draftID, ok := h.identify(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid row index")
		return
	}

	var req request.UpdateRowRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.draftService.UpdateRow(*userID, draftID, index, req.Quantity, req.UnitAmount, req.TaxRate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Row updated", view)
}

// SetHeader handles replacing the draft header
func (h *DraftHandler) SetHeader(c *gin.Context) {
	userID, draftID, ok := h.identify(c)
	if !ok {
		return
	}

	var req request.SetHeaderRequest
	if !bindJSON(c, &req) {
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	view, err := h.draftService.SetHeader(*userID, draftID, service.HeaderInput{
		PartyID:       req.PartyID,
		Date:          date,
		Status:        enum.ParseDocumentStatus(req.Status),
		PaymentStatus: enum.ParsePaymentStatus(req.PaymentStatus),
		ShippingCost:  req.ShippingCost,
		DiscountTotal: req.DiscountTotal,
		PaidAmount:    req.PaidAmount,
		Note:          req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Header updated", view)
}

// Submit handles validating the draft and creating the document upstream
func (h *DraftHandler) Submit(c *gin.Context) {
	userID, draftID, ok := h.identify(c)
	if !ok {
		return
	}

	doc, err := h.draftService.Submit(c.Request.Context(), *userID, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document created successfully", doc)
}

func (h *DraftHandler) identify(c *gin.Context) (*uuid.UUID, uuid.UUID, bool) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return nil, uuid.Nil, false
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return nil, uuid.Nil, false
	}

	return userID, draftID, true
}
