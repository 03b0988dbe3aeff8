// Package handlers translates HTTP requests into store calls and shapes
// responses. All authorization decisions happen before this layer (the Auth
// middleware) or below it (owner-scoped repositories).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inventolabs/recipe-catalog/pkg/apperr"
	"github.com/inventolabs/recipe-catalog/pkg/response"
)

// fail maps a service error onto the wire. Internal errors are masked.
func fail(c *gin.Context, err error) {
	status := apperr.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	response.Error[any](c, status, msg, nil)
}
