package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ajashia/righttrack-server/models"
	"github.com/ajashia/righttrack-server/scraper"
)

type stationSearchRequest struct {
	Q string `json:"q"`
}

func (s *Server) StationSearch(c *fiber.Ctx) error {
	var req stationSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "JSON body must contain 'q'"})
	}
	query := strings.TrimSpace(req.Q)
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "q cannot be empty"})
	}

	matches, err := s.Rail.SearchStations(query)
	if err != nil {
		s.Logger.Errorw("station search failed", "query", query, "error", err)
		return c.Status(statusFor(err)).JSON(models.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(matches)
}

type departuresRequest struct {
	ID   string `json:"id"`
	Dest string `json:"dest"`
}

func (s *Server) Departures(c *fiber.Ctx) error {
	var req departuresRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "JSON body must contain 'id'"})
	}
	stationID := strings.TrimSpace(req.ID)
	if stationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "id cannot be empty"})
	}
	dest := strings.TrimSpace(req.Dest)
	if dest == "" {
		dest = "0"
	}

	trains, err := s.Rail.Departures(stationID, dest)
	if err != nil {
		s.Logger.Errorw("departure search failed", "station", stationID, "error", err)
		return c.Status(statusFor(err)).JSON(models.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(trains)
}

type timetableRequest struct {
	TrainURL string `json:"train_url"`
}

func (s *Server) Timetable(c *fiber.Ctx) error {
	var req timetableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "JSON body must contain 'train_url'"})
	}
	trainURL := strings.TrimSpace(req.TrainURL)
	if !strings.HasPrefix(trainURL, scraper.TimetablePathPrefix) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "Invalid train_url format"})
	}

	rows, err := s.Rail.Timetable(trainURL)
	if err != nil {
		s.Logger.Errorw("timetable fetch failed", "train_url", trainURL, "error", err)
		return c.Status(statusFor(err)).JSON(models.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(rows)
}
