package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	db := config.DB

	authSvc := services.NewAuthService(db)
	informantSvc := services.NewInformantService(db)
	menuSvc := services.NewMenuService(db)
	masterSvc := services.NewMasterIngredientService(db)
	ingredientSvc := services.NewIngredientService(db, masterSvc)
	stepSvc := services.NewStepService(db)
	photoSvc := services.NewPhotoService(db)
	userSvc := services.NewUserService(db)
	statsSvc := services.NewStatsService(db)

	auth := controllers.NewAuthController(authSvc)
	informants := controllers.NewInformantController(informantSvc)
	menus := controllers.NewMenuController(menuSvc)
	children := controllers.NewMenuChildrenController(ingredientSvc, stepSvc, photoSvc)
	master := controllers.NewMasterIngredientController(masterSvc)
	uploads := controllers.NewUploadController()
	users := controllers.NewUserController(userSvc)
	stats := controllers.NewStatsController(statsSvc)

	// Public auth routes
	r.POST("/auth/login", auth.Login)

	// Everything else requires a session
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/auth/me", auth.Me)

		api.GET("/informants", informants.List)
		api.POST("/informants", informants.Create)
		api.PATCH("/informants", informants.Update)
		api.DELETE("/informants", informants.Delete)

		api.GET("/menus", menus.List)
		api.GET("/menus/:id", menus.Get)
		api.POST("/menus", menus.Create)
		api.PUT("/menus", menus.Update)
		api.PATCH("/menus", menus.UpdateSelectionStatus)
		api.DELETE("/menus", menus.Delete)

		api.POST("/menu-ingredients", children.ReplaceIngredients)
		api.GET("/menu-ingredients", children.ListIngredients)
		api.POST("/menu-steps", children.ReplaceSteps)
		api.GET("/menu-steps", children.ListSteps)
		api.POST("/menu-photos", children.ReplacePhotos)
		api.GET("/menu-photos", children.ListPhotos)

		api.GET("/master-ingredients", master.Search)
		api.POST("/master-ingredients", master.FindOrCreate)

		api.POST("/uploads", uploads.Upload)

		api.GET("/stats/summary", stats.Summary)

		admin := api.Group("/users")
		admin.Use(middlewares.RequireRole(services.RoleAdmin))
		{
			admin.GET("", users.List)
			admin.POST("", users.Create)
			admin.PATCH("", users.Update)
			admin.DELETE("", users.Delete)
		}
	}

	return r
}
