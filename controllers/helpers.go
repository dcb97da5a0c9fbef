package controllers

import (
	"errors"
	"strconv"

	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/PeteShepley/simple-point-of-sale/pkg/resp"
	"github.com/PeteShepley/simple-point-of-sale/services"
	"github.com/gin-gonic/gin"
)

// paramID reads a positive integer path parameter, answering 400 otherwise.
func paramID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}

// bindJSON decodes the body, runs the binding tags and then Validate.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		resp.BadRequest(c, err.Error())
		return false
	}
	return validate(c, req)
}

func bindQuery(c *gin.Context, q any) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		resp.BadRequest(c, err.Error())
		return false
	}
	return validate(c, q)
}

func validate(c *gin.Context, v any) bool {
	if val, ok := v.(dto.Validator); ok {
		if err := val.Validate(); err != nil {
			resp.BadRequest(c, err.Error())
			return false
		}
	}
	return true
}

// fail maps service errors onto status codes.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, services.ErrIngredientNotFound),
		errors.Is(err, services.ErrStepNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrStepOrderTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrMenuMismatch):
		resp.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		resp.ServerError(c, err)
	}
}
