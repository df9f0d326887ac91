package models

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// POI is a classified point of interest from an Overpass query. For ways
// and relations Lat/Lon hold the synthesized center coordinate. Emergency
// marks safety-relevant facilities (police, hospitals, anything carrying
// an emergency or phone contact tag).
type POI struct {
	ID        int64             `json:"id"`
	OSMType   string            `json:"osm_type"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Lat       float64           `json:"lat"`
	Lon       float64           `json:"lon"`
	Tags      map[string]string `json:"tags"`
	Emergency bool              `json:"emergency"`
}

// MapResult is the envelope returned by the station-map pipeline. The same
// value is stored in the result cache; Cached is set on the copy handed
// back for a cache hit.
type MapResult struct {
	Success   bool       `json:"success"`
	Center    Coordinate `json:"center"`
	Radius    int        `json:"radius"`
	Source    string     `json:"source"`
	POICount  int        `json:"pois_count"`
	POIs      []POI      `json:"pois"`
	QueriedAt int64      `json:"queried_at"`
	Cached    bool       `json:"cached,omitempty"`
}
