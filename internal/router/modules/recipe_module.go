package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inventolabs/recipe-catalog/internal/container"
	handlers "github.com/inventolabs/recipe-catalog/internal/interface/http"
	"github.com/inventolabs/recipe-catalog/internal/interface/middleware"
)

// RecipeModule wires the recipe CRUD endpoints; everything requires auth.
type RecipeModule struct {
	Handler *handlers.RecipeHandler
}

func NewRecipeModule(h *handlers.RecipeHandler) *RecipeModule {
	return &RecipeModule{Handler: h}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	auth := rg.Group("/recipes")
	auth.Use(middleware.Auth(rdb, container.GetJWT()))
	auth.Use(middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/:id", m.Handler.Get)
		auth.PATCH("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
