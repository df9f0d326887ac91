package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ajashia/righttrack-server/models"
	"github.com/ajashia/righttrack-server/services"
)

func (s *Server) StationMap(c *fiber.Ctx) error {
	station := strings.TrimSpace(c.Query("station"))
	latStr := strings.TrimSpace(c.Query("lat"))
	lonStr := strings.TrimSpace(c.Query("lon"))
	radius := c.QueryInt("radius", s.DefaultRadius)

	if station == "" && (latStr == "" || lonStr == "") {
		return c.Status(fiber.StatusBadRequest).JSON(models.MapErrorResponse{Error: "Provide station name or lat & lon"})
	}

	query := services.MapQuery{Station: station, Radius: radius}
	if station == "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.MapErrorResponse{Error: "Invalid lat/lon"})
		}
		query.Lat, query.Lon = lat, lon
	}

	result, err := s.Maps.StationMap(query)
	if err != nil {
		s.Logger.Errorw("station map failed", "station", station, "error", err)
		msg := err.Error()
		if errors.Is(err, models.ErrPlaceNotFound) {
			msg = "Geocoding failed"
		}
		return c.Status(statusFor(err)).JSON(models.MapErrorResponse{Error: msg})
	}
	return c.JSON(result)
}
