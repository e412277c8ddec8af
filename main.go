// @title DDPlanner API
// @version 1.0
// @description Backend do DDPlanner: geração de planos de estudo e gestão de assinaturas.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"ddplanner_backend/internal/app"
	"ddplanner_backend/internal/config"
	"ddplanner_backend/pkg/configwatcher"
	"ddplanner_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if reloaded, ok := newCfg.(*config.Config); ok {
			*cfg = *reloaded
			logger.Log.Info("Configuration reloaded")
		}
	})

	application.Run()
}
