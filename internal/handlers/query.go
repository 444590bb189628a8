package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/filters"
	"github.com/yungbote/crm-backend/internal/services"
)

type QueryHandler struct {
	queryService services.QueryService
}

func NewQueryHandler(queryService services.QueryService) *QueryHandler {
	return &QueryHandler{queryService: queryService}
}

func (h *QueryHandler) ListCustomers(c *gin.Context) { h.list(c, filters.EntityCustomer) }
func (h *QueryHandler) ListProducts(c *gin.Context)  { h.list(c, filters.EntityProduct) }
func (h *QueryHandler) ListOrders(c *gin.Context)    { h.list(c, filters.EntityOrder) }

func (h *QueryHandler) list(c *gin.Context, entity filters.Entity) {
	criteria := map[string]string{}
	var page filters.PageRequest
	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "cursor":
			page.Cursor = values[0]
		case "limit":
			n, err := strconv.Atoi(values[0])
			if err == nil {
				page.Limit = n
			}
		default:
			// Everything else is a filter criterion; the filter engine
			// rejects unknown keys itself.
			criteria[key] = values[0]
		}
	}

	result, err := h.queryService.List(c.Request.Context(), entity, criteria, &page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(200, result)
}
