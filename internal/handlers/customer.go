package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/services"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var input services.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.customerService.Create(c.Request.Context(), input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, "Customer created successfully", created)
}

func (h *CustomerHandler) BulkCreate(c *gin.Context) {
	var inputs []services.CreateCustomerInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.customerService.BulkCreate(c.Request.Context(), inputs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mutationEnvelope{
		Success: true,
		Data:    result.Customers,
		Errors:  result.Errors,
	})
}

func (h *CustomerHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	found, err := h.customerService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, "", found)
}
