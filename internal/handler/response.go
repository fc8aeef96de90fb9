package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/aravindan888/opsml/internal/domain"
)

// JSON writes a successful payload.
func JSON(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusOK, data)
}

// Error maps a domain error onto an HTTP status and a flat error body.
func Error(c *app.RequestContext, err error) {
	message := "an error occurred"
	if domainErr, ok := err.(*domain.DomainError); ok {
		message = domainErr.UserMessage()
	}

	switch {
	case domain.IsNotFound(err):
		c.JSON(consts.StatusNotFound, utils.H{"error": message})
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, utils.H{"error": message})
	default:
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "internal server error"})
	}
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, utils.H{"error": message})
}
