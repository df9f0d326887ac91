package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/ajashia/righttrack-server/cache"
	"github.com/ajashia/righttrack-server/config"
	"github.com/ajashia/righttrack-server/genai"
	"github.com/ajashia/righttrack-server/handlers"
	"github.com/ajashia/righttrack-server/osm"
	"github.com/ajashia/righttrack-server/scraper"
	"github.com/ajashia/righttrack-server/services"
	"github.com/ajashia/righttrack-server/utils"
)

func main() {
	_ = godotenv.Load()

	log := utils.NewLogger()
	defer func() { _ = log.Sync() }()

	if err := config.LoadConfig(resolveConfigPath()); err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}
	cfg := config.AppConfig
	log.Infow("configuration loaded",
		"port", cfg.Server.Port,
		"rail_base_url", cfg.Rail.BaseURL,
		"gemini_configured", cfg.Gemini.APIKey != "")

	store := cache.New(cfg.Geo.CacheTTL)
	railClient := scraper.NewClient(cfg.Rail, cfg.Client, log)
	osmClient := osm.NewClient(cfg.Geo, cfg.Client, log)
	aiClient := genai.NewClient(cfg.Gemini, log)

	server := &handlers.Server{
		Rail:          services.NewRailService(railClient, log),
		Maps:          services.NewMapService(osmClient, store, log),
		AI:            services.NewAIService(aiClient, log),
		DefaultRadius: cfg.Geo.DefaultRadius,
		Logger:        log,
	}

	app := fiber.New()
	app.Use(cors.New())
	app.Use(func(c *fiber.Ctx) error {
		if c.Path() != "/health" {
			log.Infow("request", "method", c.Method(), "path", c.Path())
		}
		return c.Next()
	})

	server.RegisterRoutes(app)

	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

// resolveConfigPath honors CONFIG_PATH, falling back to the repo layout.
func resolveConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	for _, p := range []string{"config/config.yaml", "config.yaml"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return "config/config.yaml"
}
