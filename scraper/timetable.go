package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/ajashia/righttrack-server/models"
)

// ExtractTimetable reads per-stop rows from a timetable page. Stop rows are
// located through the fixed-width stop-number marker; the row is the
// marker's parent container and must have at least timetableMinCells direct
// child cells, otherwise it is skipped.
func ExtractTimetable(doc *goquery.Document) []models.TimetableRow {
	rows := make([]models.TimetableRow, 0)
	doc.Find(stopMarkerSelector).Each(func(_ int, marker *goquery.Selection) {
		cells := marker.Parent().ChildrenFiltered("div")
		if cells.Length() < timetableMinCells {
			return
		}
		rows = append(rows, models.TimetableRow{
			Code:        cellText(cells, ttCodeCell),
			StationName: cellText(cells, ttNameCell),
			Arrives:     cellText(cells, ttArrivesCell),
			Departs:     cellText(cells, ttDepartsCell),
			Platform:    cellText(cells, ttPlatformCell),
		})
	})
	return rows
}
