package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// serverError is the one response for unhandled faults: a bare 500, no
// custom page, error attached to the context for the request log.
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "internal server error")
	c.Abort()
}
