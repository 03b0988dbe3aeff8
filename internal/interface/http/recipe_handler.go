package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/inventolabs/recipe-catalog/internal/application"
	repo "github.com/inventolabs/recipe-catalog/internal/domain/repository"
	"github.com/inventolabs/recipe-catalog/internal/interface/middleware"
	"github.com/inventolabs/recipe-catalog/pkg/response"
	"github.com/inventolabs/recipe-catalog/pkg/validation"
)

type RecipeHandler struct {
	Svc    *application.RecipeService
	Logger *logrus.Logger
}

func NewRecipeHandler(svc *application.RecipeService, logger *logrus.Logger) *RecipeHandler {
	return &RecipeHandler{Svc: svc, Logger: logger}
}

type createRecipeRequest struct {
	Title       string           `json:"title" binding:"required"`
	TimeMinutes int              `json:"time_minutes" binding:"gte=0"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Description string           `json:"description"`
	Link        string           `json:"link" binding:"omitempty,url"`
	Tags        []string         `json:"tags"`
	Ingredients []string         `json:"ingredients"`
}

type updateRecipeRequest struct {
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes" binding:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Link        *string          `json:"link" binding:"omitempty,url"`
	Tags        *[]string        `json:"tags"`
	Ingredients *[]string        `json:"ingredients"`
}

// List handles GET /recipes?tags=1,2&ingredients=3.
func (h *RecipeHandler) List(c *gin.Context) {
	tagIDs, ok := parseIDList(c, "tags")
	if !ok {
		return
	}
	ingredientIDs, ok := parseIDList(c, "ingredients")
	if !ok {
		return
	}
	recipes, err := h.Svc.List(c.Request.Context(), middleware.UserID(c), repo.RecipeFilter{
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, recipes, "recipes", gin.H{"count": len(recipes)})
}

// Get handles GET /recipes/:id.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := h.Svc.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec, "recipe", nil)
}

// Create handles POST /recipes.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rec, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), repo.CreateRecipeInput{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       *req.Price,
		Description: req.Description,
		Link:        req.Link,
		Tags:        req.Tags,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rec, "recipe created", nil)
}

// Update handles PATCH /recipes/:id. Only supplied fields change; supplied
// tag/ingredient lists replace the current association sets.
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rec, err := h.Svc.Update(c.Request.Context(), middleware.UserID(c), id, repo.UpdateRecipeInput{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Description: req.Description,
		Link:        req.Link,
		Tags:        req.Tags,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec, "recipe updated", nil)
}

// Delete handles DELETE /recipes/:id.
func (h *RecipeHandler) Delete(c *gin.Context) {
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

// pathID parses the :id path segment. Non-numeric IDs cannot match any
// entity and answer 404, same as an unowned row.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusNotFound, "not found", nil)
		return 0, false
	}
	return id, true
}

// parseIDList reads a comma-separated list of int64 IDs from a query
// parameter. Malformed values answer 400.
func parseIDList(c *gin.Context, param string) ([]int64, bool) {
	raw := strings.TrimSpace(c.Query(param))
	if raw == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid "+param+" filter", gin.H{param: "must be a comma-separated list of ids"})
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
