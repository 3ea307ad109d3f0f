package routes

import (
    "github.com/zachhersick/macro-muse-mvp/controllers"
    "github.com/zachhersick/macro-muse-mvp/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()
    r.Use(middlewares.RequestIDMiddleware())
    r.Use(middlewares.CORSMiddleware())

    r.GET("/health", controllers.Health)

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Protected data routes
    api := r.Group("/api")
    api.Use(middlewares.AuthMiddleware())
    {
        api.GET("/profile", controllers.GetProfile)
        api.PUT("/profile", controllers.UpdateProfile)

        api.GET("/goals", controllers.GetGoals)
        api.PUT("/goals", controllers.UpdateGoals)

        api.POST("/food-logs", controllers.AddFoodLog)
        api.GET("/food-logs", controllers.ListFoodLogs)
        api.GET("/foods/search", controllers.SearchFoods)

        api.POST("/weight-logs", controllers.AddWeightLog)
        api.GET("/weight-logs", controllers.GetWeightSummary)

        api.POST("/body-composition", controllers.AddBodyComposition)
        api.GET("/body-composition", controllers.ListBodyCompositions)

        api.POST("/measurements", controllers.AddBodyMeasurement)
        api.GET("/measurements", controllers.ListBodyMeasurements)
    }

    return r
}
