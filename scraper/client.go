package scraper

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/ajashia/righttrack-server/config"
	"github.com/ajashia/righttrack-server/models"
)

const upstreamName = "indiarailinfo"

// Client fetches pages from the scrape target. Search and timetable
// requests use separate HTTP clients so each carries its own fixed
// timeout; no retries are performed.
type Client struct {
	baseURL        string
	userAgent      string
	acceptLanguage string
	search         *http.Client
	timetable      *http.Client
	log            *zap.SugaredLogger
}

func NewClient(rail config.RailConfig, sig config.ClientConfig, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(rail.BaseURL, "/"),
		userAgent:      sig.UserAgent,
		acceptLanguage: sig.AcceptLanguage,
		search:         &http.Client{Timeout: rail.SearchTimeout},
		timetable:      &http.Client{Timeout: rail.TimetableTimeout},
		log:            log,
	}
}

// StationList fetches the station-search dropdown document for a free-text
// query.
func (c *Client) StationList(query string) (*goquery.Document, error) {
	u := fmt.Sprintf("%s/shtml/list.shtml?LappGetStationList/%s/0/1/0?", c.baseURL, url.PathEscape(query))
	return c.fetch(c.search, u)
}

// TrainSearch fetches the departure board for a station, optionally
// filtered by destination ("0" means unfiltered).
func (c *Client) TrainSearch(stationID, dest string) (*goquery.Document, error) {
	u := fmt.Sprintf("%s/search/%s/0/%s?src=&dest=&locoClass=undefined&bedroll=undefined&",
		c.baseURL, url.PathEscape(stationID), url.PathEscape(dest))
	return c.fetch(c.search, u)
}

// Timetable fetches a timetable page by the relative path previously
// returned in a DepartureRecord. The caller validates the path prefix.
func (c *Client) Timetable(trainURL string) (*goquery.Document, error) {
	return c.fetch(c.timetable, c.baseURL+trainURL)
}

func (c *Client) fetch(client *http.Client, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &models.UpstreamError{Service: upstreamName, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)

	res, err := client.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{Service: upstreamName, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.log.Warnw("scrape target returned non-success status", "url", pageURL, "status", res.StatusCode)
		return nil, &models.UpstreamError{Service: upstreamName, Err: fmt.Errorf("status code %d", res.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, &models.ParseError{Source: pageURL, Err: err}
	}
	return doc, nil
}
