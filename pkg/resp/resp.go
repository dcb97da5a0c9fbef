package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success bodies are the DTO itself; errors are {"error": "..."}.

func ErrorBody(msg string) gin.H {
	return gin.H{"error": msg}
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorBody(msg))
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorBody(msg))
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, ErrorBody(msg))
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorBody(err.Error()))
}
