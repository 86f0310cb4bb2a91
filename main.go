package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"solonest-backend/config"
	"solonest-backend/routes"
	"solonest-backend/store"
	"solonest-backend/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	s := store.New(logger)
	if cfg.SeedDemoData {
		s.SeedDemoData(cfg.Currency)
	}

	sessions := utils.NewSessionStore(cfg.SessionFile)

	r := routes.SetupRouter(cfg, logger, s, sessions)
	printRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
