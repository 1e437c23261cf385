package main

import (
	"fmt"
	"log"

	"github.com/julirosales079/parrillerosfast/configs"
	"github.com/julirosales079/parrillerosfast/middlewares"
	"github.com/julirosales079/parrillerosfast/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}
	if err := configs.SeedLocations(); err != nil {
		log.Fatalf("seed locations failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Kiosk backend running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
