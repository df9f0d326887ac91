package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ajashia/righttrack-server/models"
	"github.com/ajashia/righttrack-server/services"
)

// Server holds the pipeline services behind the HTTP surface. Handlers
// validate required fields, dispatch to one pipeline and map typed
// failures to status codes; everything else lives in the services.
type Server struct {
	Rail          *services.RailService
	Maps          *services.MapService
	AI            *services.AIService
	DefaultRadius int
	Logger        *zap.SugaredLogger
}

func (s *Server) RegisterRoutes(app *fiber.App) {
	app.Post("/station_search", s.StationSearch)
	app.Post("/departures", s.Departures)
	app.Post("/timetable", s.Timetable)
	app.Get("/station_map", s.StationMap)
	app.Post("/ask_ai", s.AskAI)
	app.Get("/health", s.Health)
}

// Health has no dependencies; it acknowledges liveness with the current
// time.
func (s *Server) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{OK: true, Time: time.Now().Unix()})
}

// statusFor maps the error taxonomy to HTTP statuses: upstream failures,
// geocoding misses and a missing AI configuration are server-fault 502s;
// whole-document parse breakage is a 500.
func statusFor(err error) int {
	var upstream *models.UpstreamError
	if errors.As(err, &upstream) {
		return fiber.StatusBadGateway
	}
	if errors.Is(err, models.ErrPlaceNotFound) || errors.Is(err, models.ErrAINotConfigured) {
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}
