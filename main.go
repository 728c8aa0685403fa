package main

import (
	"fmt"
	"log"

	"github.com/BETACRD01/delibery-sub000/configs"
	"github.com/BETACRD01/delibery-sub000/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedCommissionRules(cfg); err != nil {
		log.Fatalf("seed commission rules failed: %v", err)
	}
	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
