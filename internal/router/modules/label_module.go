package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inventolabs/recipe-catalog/internal/container"
	handlers "github.com/inventolabs/recipe-catalog/internal/interface/http"
	"github.com/inventolabs/recipe-catalog/internal/interface/middleware"
)

// LabelModule wires one label resource (tags or ingredients) under the
// given path; everything requires auth.
type LabelModule struct {
	Path    string
	Handler *handlers.LabelHandler
}

func NewLabelModule(path string, h *handlers.LabelHandler) *LabelModule {
	return &LabelModule{Path: path, Handler: h}
}

func (m *LabelModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	auth := rg.Group("/" + m.Path)
	auth.Use(middleware.Auth(rdb, container.GetJWT()))
	auth.Use(middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.PATCH("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
