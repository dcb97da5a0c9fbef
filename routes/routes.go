package routes

import (
	"github.com/PeteShepley/simple-point-of-sale/configs"
	"github.com/PeteShepley/simple-point-of-sale/controllers"
	"github.com/PeteShepley/simple-point-of-sale/middlewares"
	"github.com/PeteShepley/simple-point-of-sale/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NewRouter builds the engine with the middleware chain and every route.
func NewRouter(cfg *configs.Config, db *gorm.DB, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.Recovery())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	RegisterRoutes(r, db)
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	menuCtrl := controllers.NewMenuController(services.NewMenuService(db))
	recipeCtrl := controllers.NewRecipeController(services.NewRecipeService(db))

	api := r.Group("/api")

	// Menus
	m := api.Group("/menus")
	{
		m.GET("", menuCtrl.List)
		m.POST("", menuCtrl.Create)
		m.GET("/:menuId", menuCtrl.Get)
		m.PUT("/:menuId", menuCtrl.Update)
		m.DELETE("/:menuId", menuCtrl.Delete)

		// Menu items
		m.GET("/:menuId/items", menuCtrl.ListItems)
		m.POST("/:menuId/items", menuCtrl.CreateItem)
		m.GET("/:menuId/items/:id", menuCtrl.GetItem)
		m.PUT("/:menuId/items/:id", menuCtrl.UpdateItem)
		m.DELETE("/:menuId/items/:id", menuCtrl.DeleteItem)
	}

	// Recipes
	rc := api.Group("/recipes")
	{
		rc.GET("", recipeCtrl.List)
		rc.POST("", recipeCtrl.Create)
		rc.GET("/:recipeId", recipeCtrl.Get)
		rc.PUT("/:recipeId", recipeCtrl.Update)
		rc.DELETE("/:recipeId", recipeCtrl.Delete)
		rc.GET("/:recipeId/ingredients", recipeCtrl.ListRecipeIngredients)
		rc.GET("/:recipeId/ingredients/:id", recipeCtrl.GetRecipeIngredient)
	}

	// Ingredients
	ing := api.Group("/ingredients")
	{
		ing.GET("", recipeCtrl.ListIngredients)
		ing.POST("", recipeCtrl.CreateIngredient)
		ing.GET("/:id", recipeCtrl.GetIngredient)
		ing.PUT("/:id", recipeCtrl.UpdateIngredient)
		ing.DELETE("/:id", recipeCtrl.DeleteIngredient)
	}

	// Method steps
	st := api.Group("/steps")
	{
		st.GET("", recipeCtrl.ListSteps)
		st.POST("", recipeCtrl.CreateStep)
		st.GET("/:id", recipeCtrl.GetStep)
		st.PUT("/:id", recipeCtrl.UpdateStep)
		st.DELETE("/:id", recipeCtrl.DeleteStep)
	}
}
