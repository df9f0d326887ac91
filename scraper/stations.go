package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ajashia/righttrack-server/models"
)

// ExtractStationMatches walks the station-search dropdown table two rows at
// a time: a primary row (id, code, name, division, full name) followed by a
// secondary row whose third cell holds the location text. Pairs below the
// minimum cell counts are skipped whole; a malformed pair never yields a
// partial match and never aborts the scan.
func ExtractStationMatches(doc *goquery.Document) []models.StationMatch {
	rows := doc.Find(stationRowSelector)
	matches := make([]models.StationMatch, 0)

	for i := 0; i+1 < rows.Length(); i += 2 {
		primary := rows.Eq(i).Find("td")
		secondary := rows.Eq(i + 1).Find("td")
		if primary.Length() < stationPrimaryMinCells || secondary.Length() < stationSecondaryMinCells {
			continue
		}

		matches = append(matches, models.StationMatch{
			ID:       cellText(primary, 0),
			Code:     cellText(primary, 1),
			Name:     cellText(primary, 2),
			Division: cellText(primary, 3),
			FullName: cellText(primary, 4),
			Location: cellText(secondary, 2),
		})
	}

	return matches
}

// cellText returns the trimmed text of cell i, or "" when the selection has
// no such cell.
func cellText(cells *goquery.Selection, i int) string {
	if i >= cells.Length() {
		return ""
	}
	return strings.TrimSpace(cells.Eq(i).Text())
}
