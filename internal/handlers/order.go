package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/crm-backend/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.orderService.Create(c.Request.Context(), input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, "Order created successfully", created)
}

// RecomputeTotal returns the order total at current prices; pass
// persist=true to also refresh the stored snapshot.
func (h *OrderHandler) RecomputeTotal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	persist := c.Query("persist") == "true"
	total, err := h.orderService.RecomputeTotal(c.Request.Context(), id, persist)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, "", gin.H{"order_id": id, "total_amount": total})
}
