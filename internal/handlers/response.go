package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/domain"
)

type mutationEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func RespondOK(c *gin.Context, message string, payload interface{}) {
	c.JSON(http.StatusOK, mutationEnvelope{Success: true, Message: message, Data: payload})
}

func RespondCreated(c *gin.Context, message string, payload interface{}) {
	c.JSON(http.StatusCreated, mutationEnvelope{Success: true, Message: message, Data: payload})
}

// RespondDomainError maps the error taxonomy onto HTTP statuses. Validation
// and filter problems are client errors; anything unrecognized is a 500.
func RespondDomainError(c *gin.Context, err error) {
	var (
		verr *domain.ValidationError
		nf   *domain.NotFoundError
		conf *domain.ConflictError
		ferr *domain.InvalidFilterError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, mutationEnvelope{Success: false, Message: "validation failed", Errors: verr.Violations})
	case errors.As(err, &ferr):
		c.JSON(http.StatusBadRequest, mutationEnvelope{Success: false, Message: ferr.Error()})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, mutationEnvelope{Success: false, Message: nf.Error()})
	case errors.As(err, &conf):
		c.JSON(http.StatusConflict, mutationEnvelope{Success: false, Message: conf.Error()})
	default:
		c.JSON(http.StatusInternalServerError, mutationEnvelope{Success: false, Message: "internal error"})
	}
}
