package osm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ajashia/righttrack-server/models"
)

// Tag clauses requested around a station, OR'd together by Overpass.
// Railway infrastructure first, then the fixed amenity list, then
// station-tagged offices/buildings, entrances, signals and bus stops.
var overpassClauses = []string{
	`[railway~"station|platform|halt|subway_entrance"]`,
	`[public_transport=platform]`,
	`[amenity~"police|clinic|hospital|toilets|doctors|pharmacy"]`,
	`[office~"station"]`,
	`[building=station]`,
	`[entrance]`,
	`[railway=signal]`,
	`[highway=bus_stop]`,
}

// typeSummaryKeys is the fixed priority order for building a POI's type
// summary out of its tags.
var typeSummaryKeys = []string{"railway", "public_transport", "amenity", "office", "building", "highway", "entrance"}

// BuildQuery renders the Overpass QL radius query for a coordinate. Each
// clause is independent; Overpass unions the results.
func BuildQuery(lat, lon float64, radius int) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, clause := range overpassClauses {
		fmt.Fprintf(&b, "  nwr(around:%d,%f,%f)%s;\n", radius, lat, lon, clause)
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// NearbyPOIs posts a radius query to Overpass and classifies the returned
// elements.
func (c *Client) NearbyPOIs(lat, lon float64, radius int) ([]models.POI, error) {
	query := BuildQuery(lat, lon, radius)

	req, err := http.NewRequest(http.MethodPost, c.overpassURL, strings.NewReader(query))
	if err != nil {
		return nil, &models.UpstreamError{Service: "overpass", Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)

	res, err := c.overpass.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{Service: "overpass", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &models.UpstreamError{Service: "overpass", Err: fmt.Errorf("status code %d", res.StatusCode)}
	}

	var payload overpassResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, &models.UpstreamError{Service: "overpass", Err: err}
	}

	return classifyElements(payload.Elements), nil
}

// classifyElements normalizes raw Overpass elements into POIs. Nodes use
// their own coordinate; extended geometries use the synthesized center and
// are dropped when none is present.
func classifyElements(elements []overpassElement) []models.POI {
	pois := make([]models.POI, 0, len(elements))
	for _, el := range elements {
		lat, lon := el.Lat, el.Lon
		if el.Type != "node" {
			if el.Center == nil {
				continue
			}
			lat, lon = el.Center.Lat, el.Center.Lon
		}

		tags := el.Tags
		if tags == nil {
			tags = map[string]string{}
		}

		pois = append(pois, models.POI{
			ID:        el.ID,
			OSMType:   el.Type,
			Name:      poiName(tags),
			Type:      typeSummary(tags),
			Lat:       lat,
			Lon:       lon,
			Tags:      tags,
			Emergency: emergencyRelevant(tags),
		})
	}
	return pois
}

// poiName prefers name, then ref, then operator.
func poiName(tags map[string]string) string {
	for _, k := range []string{"name", "ref", "operator"} {
		if v := tags[k]; v != "" {
			return v
		}
	}
	return ""
}

// typeSummary joins the present priority tags as "key=value" pairs in
// order, or "other" when none apply.
func typeSummary(tags map[string]string) string {
	parts := make([]string, 0, len(typeSummaryKeys))
	for _, k := range typeSummaryKeys {
		if v, ok := tags[k]; ok {
			parts = append(parts, k+"="+v)
		}
	}
	if len(parts) == 0 {
		return "other"
	}
	return strings.Join(parts, ", ")
}

// emergencyRelevant marks police and hospital amenities plus anything
// carrying an emergency or phone-contact tag.
func emergencyRelevant(tags map[string]string) bool {
	amenity := tags["amenity"]
	if strings.Contains(amenity, "police") || strings.Contains(amenity, "hospital") {
		return true
	}
	return tags["emergency"] != "" || tags["emergency_phone"] != "" || tags["contact:phone"] != ""
}
