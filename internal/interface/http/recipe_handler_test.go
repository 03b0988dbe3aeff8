package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inventolabs/recipe-catalog/internal/application"
	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
	"github.com/inventolabs/recipe-catalog/internal/domain/repository"
	"github.com/inventolabs/recipe-catalog/internal/domain/repository/mocks"
	handlers "github.com/inventolabs/recipe-catalog/internal/interface/http"
	"github.com/inventolabs/recipe-catalog/internal/interface/middleware"
	"github.com/inventolabs/recipe-catalog/pkg/validation"
)

// asUser stands in for the auth middleware in handler tests.
func asUser(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, id)
		c.Next()
	}
}

func recipeTestRouter(repo *mocks.RecipeRepository, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	r := gin.New()
	h := handlers.NewRecipeHandler(application.NewRecipeService(repo, nil), nil)
	g := r.Group("/api/recipes", asUser(userID))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func decodeData(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Data
}

func TestCreateRecipePreservesDecimalPrice(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	repo.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(in repository.CreateRecipeInput) bool {
		return in.Price.Equal(decimal.RequireFromString("5.50")) && in.TimeMinutes == 5
	})).Return(&entity.Recipe{
		ID:          1,
		Title:       "sambar",
		TimeMinutes: 5,
		Price:       decimal.RequireFromString("5.50"),
		Tags:        []entity.Label{},
		Ingredients: []entity.Label{},
	}, nil).Once()

	r := recipeTestRouter(repo, 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recipes",
		strings.NewReader(`{"title":"sambar","time_minutes":5,"price":"5.50"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w.Body.Bytes())
	// Exact decimal string, no floating-point drift.
	assert.Equal(t, "5.50", data["price"])
	repo.AssertExpectations(t)
}

func TestCreateRecipeRejectsNegativeMinutes(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	r := recipeTestRouter(repo, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recipes",
		strings.NewReader(`{"title":"x","time_minutes":-1,"price":"1.00"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRecipeRequiresTitleAndPrice(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	r := recipeTestRouter(repo, 1)

	for _, body := range []string{
		`{"time_minutes":5,"price":"1.00"}`,
		`{"title":"x","time_minutes":5}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestListRecipesParsesFilters(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	repo.On("List", mock.Anything, int64(1), repository.RecipeFilter{
		TagIDs:        []int64{1, 2},
		IngredientIDs: []int64{3},
	}).Return([]entity.Recipe{}, nil).Once()

	r := recipeTestRouter(repo, 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recipes?tags=1,2&ingredients=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestListRecipesRejectsMalformedFilter(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	r := recipeTestRouter(repo, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recipes?tags=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRecipeReplacesTags(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	repo.On("Update", mock.Anything, int64(1), int64(7), mock.MatchedBy(func(in repository.UpdateRecipeInput) bool {
		return in.Tags != nil && len(*in.Tags) == 1 && (*in.Tags)[0] == "fish" &&
			in.Title == nil && in.Ingredients == nil
	})).Return(&entity.Recipe{
		ID:          7,
		Title:       "curry",
		Tags:        []entity.Label{{ID: 3, Name: "fish"}},
		Ingredients: []entity.Label{},
	}, nil).Once()

	r := recipeTestRouter(repo, 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/recipes/7",
		strings.NewReader(`{"tags":["fish"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w.Body.Bytes())
	tags := data["tags"].([]any)
	require.Len(t, tags, 1)
	assert.Equal(t, "fish", tags[0].(map[string]any)["name"])
	repo.AssertExpectations(t)
}

func TestDeleteRecipe(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	repo.On("Delete", mock.Anything, int64(1), int64(7)).Return(nil).Once()

	r := recipeTestRouter(repo, 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}

func TestUnownedRecipeIs404(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	repo.On("Get", mock.Anything, int64(2), int64(7)).Return(nil, repository.ErrNotFound)

	r := recipeTestRouter(repo, 2)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recipes/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNonNumericRecipeIDIs404(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	r := recipeTestRouter(repo, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recipes/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
