package router

import (
	"github.com/inventolabs/recipe-catalog/internal/application"
	"github.com/inventolabs/recipe-catalog/internal/container"
	pginfra "github.com/inventolabs/recipe-catalog/internal/infrastructure/postgres"
	handlers "github.com/inventolabs/recipe-catalog/internal/interface/http"
	"github.com/inventolabs/recipe-catalog/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	tagRepo := pginfra.NewTagRepository(pool)
	ingredientRepo := pginfra.NewIngredientRepository(pool)
	recipeRepo := pginfra.NewRecipeRepository(pool, tagRepo, ingredientRepo)
	userRepo := pginfra.NewUserRepository(pool)

	userSvc := application.NewUserService(userRepo, container.GetJWT(), container.GetRedis(), logger)
	recipeSvc := application.NewRecipeService(recipeRepo, logger)
	tagSvc := application.NewLabelService(tagRepo, "tag", logger)
	ingredientSvc := application.NewLabelService(ingredientRepo, "ingredient", logger)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewRecipeModule(handlers.NewRecipeHandler(recipeSvc, logger)))
	r.Add(modules.NewLabelModule("tags", handlers.NewLabelHandler(tagSvc, logger)))
	r.Add(modules.NewLabelModule("ingredients", handlers.NewLabelHandler(ingredientSvc, logger)))
}
