package main

import (
	"fmt"
	"log"
	"os"

	"playjazz-backend/config"
	"playjazz-backend/models"
	"playjazz-backend/routes"
	"playjazz-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Unit{},
		&models.User{},
		&models.Lead{},
		&models.Student{},
		&models.TimelineLog{},
		&models.Payment{},
		&models.SystemConfig{},
	)

	config.SeedDB()
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
