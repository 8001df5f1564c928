package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mwirigi/salepoint-api/internal/application/service"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/response"
	"github.com/mwirigi/salepoint-api/pkg/pagination"
)

// CatalogHandler proxies product and contact lists for selection dropdowns
// and the POS grid
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func listParams(c *gin.Context) *gateway.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	return &gateway.ListParams{
		Search: c.Query("search"),
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}
}

// ListProducts handles listing catalog products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	result, err := h.catalogService.ListProducts(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// ListContacts handles listing customers or suppliers
func (h *CatalogHandler) ListContacts(c *gin.Context) {
	result, err := h.catalogService.ListContacts(c.Request.Context(), c.Query("type"), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Contacts retrieved successfully", result)
}
