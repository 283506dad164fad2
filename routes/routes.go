package routes

import (
	"log"

	"github.com/victorhaugaard/sugar-reset-sub000/config"
	"github.com/victorhaugaard/sugar-reset-sub000/controllers"
	"github.com/victorhaugaard/sugar-reset-sub000/middlewares"
	"github.com/victorhaugaard/sugar-reset-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	vision, err := services.NewVisionService()
	if err != nil {
		log.Fatalf("Failed to init vision service: %v", err)
	}
	analyzeSvc := services.NewAnalyzeService(vision, services.NewFoodDataService())

	entryCtl := controllers.NewEntryController(services.NewEntryService(config.DB), analyzeSvc)
	wellnessCtl := controllers.NewWellnessController(services.NewWellnessService(config.DB))
	scoreCtl := controllers.NewScoreController(services.NewHealthScoreService(config.DB))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	entries := r.Group("/entries")
	entries.Use(middlewares.AuthMiddleware())
	{
		entries.POST("", entryCtl.CreateEntry)
		entries.POST("/score", entryCtl.ScoreEntry)
		entries.POST("/analyze", entryCtl.AnalyzePhoto)
		entries.GET("", entryCtl.ListEntries)
		entries.DELETE("/:id", entryCtl.DeleteEntry)
	}

	wellness := r.Group("/wellness")
	wellness.Use(middlewares.AuthMiddleware())
	{
		wellness.PUT("", wellnessCtl.UpsertWellness)
		wellness.GET("", wellnessCtl.ListWellness)
	}

	scores := r.Group("/scores")
	scores.Use(middlewares.AuthMiddleware())
	{
		scores.GET("/daily", scoreCtl.GetDailyScore)
		scores.GET("/history", scoreCtl.GetHistory)
		scores.GET("/trends", scoreCtl.GetTrends)
	}

	return r
}
