// Package osm resolves place names through Nominatim and finds nearby
// points of interest through the Overpass API.
package osm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/ajashia/righttrack-server/config"
	"github.com/ajashia/righttrack-server/models"
)

// Client talks to Nominatim and Overpass with the shared client signature
// headers and per-service timeouts.
type Client struct {
	nominatimURL   string
	overpassURL    string
	userAgent      string
	acceptLanguage string
	geocode        *http.Client
	overpass       *http.Client
	log            *zap.SugaredLogger
}

func NewClient(geo config.GeoConfig, sig config.ClientConfig, log *zap.SugaredLogger) *Client {
	return &Client{
		nominatimURL:   geo.NominatimURL,
		overpassURL:    geo.OverpassURL,
		userAgent:      sig.UserAgent,
		acceptLanguage: sig.AcceptLanguage,
		geocode:        &http.Client{Timeout: geo.GeocodeTimeout},
		overpass:       &http.Client{Timeout: geo.OverpassTimeout},
		log:            log,
	}
}

// nominatimPlace mirrors the relevant parts of the Nominatim search
// payload; coordinates arrive as strings.
type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a place name to a coordinate using the single best
// Nominatim match. A well-formed empty result yields ErrPlaceNotFound so
// the caller can distinguish a resolution miss from an outage.
func (c *Client) Geocode(place string) (*models.Coordinate, error) {
	params := url.Values{}
	params.Set("q", place)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "0")

	req, err := http.NewRequest(http.MethodGet, c.nominatimURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &models.UpstreamError{Service: "nominatim", Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)

	res, err := c.geocode.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{Service: "nominatim", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &models.UpstreamError{Service: "nominatim", Err: fmt.Errorf("status code %d", res.StatusCode)}
	}

	var places []nominatimPlace
	if err := json.NewDecoder(res.Body).Decode(&places); err != nil {
		return nil, &models.UpstreamError{Service: "nominatim", Err: err}
	}
	if len(places) == 0 {
		return nil, models.ErrPlaceNotFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, &models.UpstreamError{Service: "nominatim", Err: fmt.Errorf("bad latitude %q", places[0].Lat)}
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, &models.UpstreamError{Service: "nominatim", Err: fmt.Errorf("bad longitude %q", places[0].Lon)}
	}

	return &models.Coordinate{Lat: lat, Lon: lon}, nil
}
