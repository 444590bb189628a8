package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input services.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.productService.Create(c.Request.Context(), input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, "Product created successfully", created)
}

func (h *ProductHandler) RestockLow(c *gin.Context) {
	result, err := h.productService.UpdateLowStock(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, result.Message, result.Products)
}
