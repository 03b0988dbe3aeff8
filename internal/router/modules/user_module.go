package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inventolabs/recipe-catalog/internal/container"
	handlers "github.com/inventolabs/recipe-catalog/internal/interface/http"
	"github.com/inventolabs/recipe-catalog/internal/interface/middleware"
)

// UserModule wires the user endpoints.
// Public: POST /api/users, POST /api/users/token, POST /api/users/token/refresh
// Protected: GET /api/users/me, PATCH /api/users/me
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	// Public with rate limiting
	registerLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP())  // 10 req/min per IP
	tokenLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP())     // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIP())   // 60 req/min per IP

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/users/token", tokenLimiter, m.Handler.Token)
	rg.POST("/users/token/refresh", refreshLimiter, m.Handler.Refresh)

	// Protected
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(rdb, container.GetJWT()))
	auth.Use(middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/me", m.Handler.Me)
		auth.PATCH("/me", m.Handler.UpdateMe)
	}
}
