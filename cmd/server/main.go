package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/macrotally/backend/config"
	httpDelivery "github.com/macrotally/backend/internal/delivery/http"
	"github.com/macrotally/backend/internal/domain"
	"github.com/macrotally/backend/internal/infrastructure/cache"
	"github.com/macrotally/backend/internal/infrastructure/daylog"
	"github.com/macrotally/backend/internal/infrastructure/fdc"
	"github.com/macrotally/backend/internal/infrastructure/foodstore"
	"github.com/macrotally/backend/internal/usecase"
)

func main() {
	// Local .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting MacroTally Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	memoryCache := cache.NewMemoryCache()
	fdcClient := fdc.NewClient(cfg.FDC.APIKey, cfg.FDC.BaseURL)
	log.Printf("FDC API configured: %s", cfg.FDC.BaseURL)

	customs := foodstore.NewMemoryStore(customFoodsFromConfig(cfg.CustomFoods))
	log.Printf("Custom foods loaded: %d", len(cfg.CustomFoods))

	resolver := usecase.NewResolver(fdcClient, customs, memoryCache, usecase.ResolverConfig{
		CacheTTL:    cfg.Cache.TTL,
		Parallelism: cfg.Resolver.Parallelism,
	})

	targets := usecase.Targets{
		ProteinTargetG:            cfg.Targets.ProteinTargetG,
		NetCarbMaxG:               cfg.Targets.NetCarbMaxG,
		NetCarbMinG:               cfg.Targets.NetCarbMinG,
		MinItemsForProteinWarning: cfg.Targets.MinItemsForProteinWarning,
	}
	log.Printf("Targets: protein=%.0fg, net carbs %.0f-%.0fg",
		targets.ProteinTargetG, targets.NetCarbMinG, targets.NetCarbMaxG)

	days := daylog.NewMemoryLog()

	handler := httpDelivery.NewHandler(resolver, days, targets)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// customFoodsFromConfig converts config entries into domain custom foods.
func customFoodsFromConfig(entries []config.CustomFood) []domain.CustomFood {
	foods := make([]domain.CustomFood, 0, len(entries))
	for _, e := range entries {
		foods = append(foods, domain.CustomFood{
			Name: e.Name,
			Nutrients: domain.NutrientProfile{
				Calories:  e.Calories,
				Protein:   e.Protein,
				Fat:       e.Fat,
				Carbs:     e.Carbs,
				Fiber:     e.Fiber,
				Sodium:    e.Sodium,
				Potassium: e.Potassium,
				Magnesium: e.Magnesium,
			},
		})
	}
	return foods
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
