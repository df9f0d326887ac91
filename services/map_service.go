package services

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ajashia/righttrack-server/cache"
	"github.com/ajashia/righttrack-server/models"
	"github.com/ajashia/righttrack-server/osm"
)

const mapSource = "openstreetmap/overpass"

// MapQuery selects the center of a POI lookup either by station name
// (geocoded) or by an explicit coordinate pair.
type MapQuery struct {
	Station string
	Lat     float64
	Lon     float64
	Radius  int
}

// MapService resolves coordinates, queries Overpass and caches the
// assembled result by query signature. The cache is the only shared state
// across requests; near-simultaneous first requests may both hit upstream,
// which is tolerated.
type MapService struct {
	osm   *osm.Client
	store *cache.Store
	log   *zap.SugaredLogger
	now   func() time.Time
}

func NewMapService(osmClient *osm.Client, store *cache.Store, log *zap.SugaredLogger) *MapService {
	return &MapService{osm: osmClient, store: store, log: log, now: time.Now}
}

// StationMap returns POIs around the requested center. Cache hits are
// returned as a copy flagged Cached so the stored entry stays clean.
func (s *MapService) StationMap(q MapQuery) (*models.MapResult, error) {
	key := cacheKey(q)
	if v, ok := s.store.Get(key); ok {
		if res, ok := v.(models.MapResult); ok {
			res.Cached = true
			s.log.Infow("station map served from cache", "key", key)
			return &res, nil
		}
	}

	lat, lon := q.Lat, q.Lon
	if q.Station != "" {
		coord, err := s.osm.Geocode(q.Station)
		if err != nil {
			return nil, err
		}
		lat, lon = coord.Lat, coord.Lon
	}

	pois, err := s.osm.NearbyPOIs(lat, lon, q.Radius)
	if err != nil {
		return nil, err
	}

	result := models.MapResult{
		Success:   true,
		Center:    models.Coordinate{Lat: lat, Lon: lon},
		Radius:    q.Radius,
		Source:    mapSource,
		POICount:  len(pois),
		POIs:      pois,
		QueriedAt: s.now().Unix(),
	}
	s.store.Set(key, result)
	s.log.Infow("station map resolved", "key", key, "pois", len(pois))
	return &result, nil
}

func cacheKey(q MapQuery) string {
	if q.Station != "" {
		return fmt.Sprintf("station:%s:%d", strings.ToLower(q.Station), q.Radius)
	}
	return fmt.Sprintf("coords:%g:%g:%d", q.Lat, q.Lon, q.Radius)
}
