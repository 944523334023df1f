package routes

import (
	"playjazz-backend/config"
	"playjazz-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		api.GET("/units", controllers.GetUnits)
		api.GET("/users", controllers.GetUsers)

		leads := api.Group("/leads")
		{
			leads.GET("", controllers.GetLeads)
			leads.POST("", controllers.CreateLead)
			leads.PUT("/:id", controllers.UpdateLead)
			leads.DELETE("/:id", controllers.DeleteLead)
		}

		students := api.Group("/students")
		{
			students.GET("", controllers.GetStudents)
			students.POST("", controllers.CreateStudent)
			students.DELETE("/:id", controllers.DeleteStudent)
		}

		api.GET("/payments", controllers.GetPayments)

		api.GET("/config", controllers.GetConfig)
		api.POST("/config", controllers.SaveConfig)
	}

	return r
}
