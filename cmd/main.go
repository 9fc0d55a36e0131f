package main

import (
	"log"
	"os"

	"github.com/raphaeljcm/daily-diet-api/config"
	"github.com/raphaeljcm/daily-diet-api/routes"
)

func main() {
	config.LoadEnv()

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
