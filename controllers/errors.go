package controllers

import (
	"errors"

	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeErr maps service errors onto the response envelope. Unknown errors
// fall through as 500s.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrAlreadyTerminal),
		errors.Is(err, services.ErrConcurrentModification),
		errors.Is(err, services.ErrCourierBusy):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidAddress),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrCourierRequired),
		errors.Is(err, services.ErrProductUnavailable),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInsufficientStock):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
