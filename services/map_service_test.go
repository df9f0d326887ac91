package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ajashia/righttrack-server/cache"
	"github.com/ajashia/righttrack-server/config"
	"github.com/ajashia/righttrack-server/models"
	"github.com/ajashia/righttrack-server/osm"
)

// geoTestServer answers Nominatim lookups on GET and Overpass queries on
// POST, counting upstream hits.
func geoTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	calls := new(int)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if r.Method == http.MethodGet {
			fmt.Fprint(w, `[{"lat":"28.6448","lon":"77.2167"}]`)
			return
		}
		fmt.Fprint(w, `{"elements":[{"type":"node","id":7,"lat":28.64,"lon":77.21,"tags":{"railway":"station","name":"Test"}}]}`)
	}))
	t.Cleanup(ts.Close)
	return ts, calls
}

func newMapService(url string) *MapService {
	osmClient := osm.NewClient(config.GeoConfig{
		NominatimURL: url,
		OverpassURL:  url,
	}, config.ClientConfig{
		UserAgent:      "test/1.0",
		AcceptLanguage: "en-US,en;q=0.9",
	}, zap.NewNop().Sugar())
	return NewMapService(osmClient, cache.New(time.Hour), zap.NewNop().Sugar())
}

func TestStationMapByCoordinates(t *testing.T) {
	ts, calls := geoTestServer(t)
	svc := newMapService(ts.URL)

	res, err := svc.StationMap(MapQuery{Lat: 28.64, Lon: 77.21, Radius: 700})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.Cached)
	assert.Equal(t, 700, res.Radius)
	assert.Equal(t, 1, res.POICount)
	require.Len(t, res.POIs, 1)
	assert.Equal(t, "railway=station", res.POIs[0].Type)
	assert.Equal(t, 1, *calls, "coordinate query skips geocoding")
}

func TestStationMapByPlaceName(t *testing.T) {
	ts, calls := geoTestServer(t)
	svc := newMapService(ts.URL)

	res, err := svc.StationMap(MapQuery{Station: "New Delhi", Radius: 500})
	require.NoError(t, err)
	assert.Equal(t, models.Coordinate{Lat: 28.6448, Lon: 77.2167}, res.Center)
	assert.Equal(t, 2, *calls, "geocode plus overpass")
}

func TestStationMapCacheHit(t *testing.T) {
	ts, calls := geoTestServer(t)
	svc := newMapService(ts.URL)

	first, err := svc.StationMap(MapQuery{Station: "New Delhi", Radius: 500})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.StationMap(MapQuery{Station: "new delhi", Radius: 500})
	require.NoError(t, err)
	assert.True(t, second.Cached, "case-insensitive key matches")
	assert.Equal(t, first.POICount, second.POICount)
	assert.Equal(t, 2, *calls, "cache hit makes no upstream calls")

	// A different radius is a different signature.
	_, err = svc.StationMap(MapQuery{Station: "New Delhi", Radius: 900})
	require.NoError(t, err)
	assert.Equal(t, 4, *calls)
}

func TestStationMapGeocodeMiss(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(ts.Close)
	svc := newMapService(ts.URL)

	_, err := svc.StationMap(MapQuery{Station: "Nowhere", Radius: 700})
	assert.ErrorIs(t, err, models.ErrPlaceNotFound)
}
