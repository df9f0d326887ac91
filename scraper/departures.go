package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ajashia/righttrack-server/models"
)

// ExtractDepartures reads every departure block from a train-search page.
// The layout is selected by the destination parameter alone: dest == "0"
// means no destination filter (routed layout), anything else is the direct
// layout. Blocks missing a train number or name are dropped. A timetable
// link is synthesized only when an internal id was recovered, using the
// canonical slug from the page or one derived from name and number.
func ExtractDepartures(doc *goquery.Document, stationID, dest string) []models.DepartureRecord {
	layout := LayoutDirect
	if dest == "0" {
		layout = LayoutRouted
	}
	pos := departureLayouts[layout]

	records := make([]models.DepartureRecord, 0)
	doc.Find(departureBlockSelector).Each(func(_ int, block *goquery.Selection) {
		anchor := timetableAnchor(block)

		var slug, internalID string
		if anchor != nil {
			href, _ := anchor.Attr("href")
			if m := timetableLinkPattern.FindStringSubmatch(href); m != nil {
				slug, internalID = m[1], m[2]
			}
		}
		if internalID == "" {
			// Some blocks carry no link at all; the id then lives on a
			// following summary sibling.
			if sib := block.NextAllFiltered(summarySiblingSelector).First(); sib.Length() > 0 {
				internalID, _ = sib.Attr(summaryIDAttr)
			}
		}

		var cells *goquery.Selection
		if layout == LayoutDirect {
			cells = block.ChildrenFiltered("div")
		} else {
			cells = block.Find(routedCellSelector)
		}

		rec := models.DepartureRecord{
			TrainNo:       cellText(cells, pos.TrainNo),
			Name:          departureName(layout, anchor, cells, pos.Name),
			Type:          cellText(cells, pos.Type),
			Zone:          cellText(cells, pos.Zone),
			Platform:      cellText(cells, pos.Platform),
			FromStation:   cellText(cells, pos.From),
			DepartureTime: cellText(cells, pos.DepartureTime),
			ToStation:     cellText(cells, pos.To),
			ArrivalTime:   cellText(cells, pos.ArrivalTime),
		}
		if rec.TrainNo == "" || rec.Name == "" {
			return
		}

		if internalID != "" {
			if slug == "" {
				slug = Slugify(rec.Name + "-" + rec.TrainNo)
			}
			rec.TrainURL = fmt.Sprintf("%s%s/%s/%s/%s", TimetablePathPrefix, slug, internalID, stationID, dest)
		}

		records = append(records, rec)
	})

	return records
}

// timetableAnchor finds the first descendant link pointing at a timetable
// path, or nil.
func timetableAnchor(block *goquery.Selection) *goquery.Selection {
	var anchor *goquery.Selection
	block.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if strings.Contains(href, TimetablePathPrefix) {
			anchor = a
			return false
		}
		return true
	})
	return anchor
}

// departureName prefers the anchor's title attribute (text before the first
// "|") over the raw cell text. In the routed layout the anchor is looked up
// inside the name cell itself.
func departureName(layout Layout, anchor *goquery.Selection, cells *goquery.Selection, nameCell int) string {
	if layout == LayoutRouted && nameCell < cells.Length() {
		anchor = cells.Eq(nameCell).Find("a[href]").First()
		if anchor.Length() == 0 {
			anchor = nil
		}
	}
	if anchor != nil {
		if title, ok := anchor.Attr("title"); ok && title != "" {
			return strings.TrimSpace(strings.SplitN(title, "|", 2)[0])
		}
	}
	return cellText(cells, nameCell)
}
