package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inventolabs/recipe-catalog/internal/application"
	"github.com/inventolabs/recipe-catalog/internal/interface/middleware"
	"github.com/inventolabs/recipe-catalog/pkg/response"
	"github.com/inventolabs/recipe-catalog/pkg/validation"
)

// LabelHandler serves both /tags and /ingredients; the wired service decides
// which store it talks to.
type LabelHandler struct {
	Svc    *application.LabelService
	Logger *logrus.Logger
}

func NewLabelHandler(svc *application.LabelService, logger *logrus.Logger) *LabelHandler {
	return &LabelHandler{Svc: svc, Logger: logger}
}

type labelRequest struct {
	Name string `json:"name" binding:"required"`
}

// List handles GET /{tags,ingredients}?assigned_only=1.
func (h *LabelHandler) List(c *gin.Context) {
	assignedOnly := false
	if raw := c.Query("assigned_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid assigned_only", gin.H{"assigned_only": "must be a boolean"})
			return
		}
		assignedOnly = v
	}
	labels, err := h.Svc.List(c.Request.Context(), middleware.UserID(c), assignedOnly)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, labels, h.Svc.Kind+"s", gin.H{"count": len(labels)})
}

// Create handles POST /{tags,ingredients}.
func (h *LabelHandler) Create(c *gin.Context) {
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, l, h.Svc.Kind+" created", nil)
}

// Update handles PATCH /{tags,ingredients}/:id.
func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Update(c.Request.Context(), middleware.UserID(c), id, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, l, h.Svc.Kind+" updated", nil)
}

// Delete handles DELETE /{tags,ingredients}/:id.
func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
