package services

import (
	"go.uber.org/zap"

	"github.com/ajashia/righttrack-server/models"
	"github.com/ajashia/righttrack-server/scraper"
)

// RailService runs the three scraping pipelines: fetch a page from the
// source, extract normalized records, return them. Stateless; failures are
// the typed errors produced by the scraper client.
type RailService struct {
	source *scraper.Client
	log    *zap.SugaredLogger
}

func NewRailService(source *scraper.Client, log *zap.SugaredLogger) *RailService {
	return &RailService{source: source, log: log}
}

// SearchStations resolves a free-text query against the station list.
func (s *RailService) SearchStations(query string) ([]models.StationMatch, error) {
	doc, err := s.source.StationList(query)
	if err != nil {
		return nil, err
	}
	matches := scraper.ExtractStationMatches(doc)
	s.log.Infow("station search", "query", query, "matches", len(matches))
	return matches, nil
}

// Departures returns the departure board for a station id, optionally
// filtered by a destination id ("0" means unfiltered).
func (s *RailService) Departures(stationID, dest string) ([]models.DepartureRecord, error) {
	doc, err := s.source.TrainSearch(stationID, dest)
	if err != nil {
		return nil, err
	}
	records := scraper.ExtractDepartures(doc, stationID, dest)
	s.log.Infow("departure search", "station", stationID, "dest", dest, "trains", len(records))
	return records, nil
}

// Timetable returns per-stop rows for a previously returned timetable path.
func (s *RailService) Timetable(trainURL string) ([]models.TimetableRow, error) {
	doc, err := s.source.Timetable(trainURL)
	if err != nil {
		return nil, err
	}
	rows := scraper.ExtractTimetable(doc)
	s.log.Infow("timetable fetch", "train_url", trainURL, "stops", len(rows))
	return rows, nil
}
