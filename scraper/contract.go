package scraper

import "regexp"

// Extraction contract for indiarailinfo.com markup.
//
// Every structural assumption about the source pages lives in this file:
// selectors, inline-style markers, attribute names, minimum cell counts and
// the per-layout cell-position tables. The site publishes no API and no
// stable contract, so when its markup shifts, this file is the only place
// that should need to change.
const (
	// Station search results render as a dropdown table whose rows come in
	// alternating primary/secondary pairs.
	stationRowSelector       = "table.dropdowntable tr"
	stationPrimaryMinCells   = 5
	stationSecondaryMinCells = 3

	// Each train on a search result page is one styled block. The inline
	// style is a heuristic marker, not a guaranteed contract.
	departureBlockSelector = `div[style*="line-height:20px;"]`

	// Cell selector for the routed layout (no destination filter): the page
	// marks cells with border classes instead of flat child divs.
	routedCellSelector = "div.tdborder, div.tdborderhighlight, div.tdborderlast"

	// Sibling summary block carrying the internal train id when the block
	// itself exposes no timetable link.
	summarySiblingSelector = "div.reg.trnsumm"
	summaryIDAttr          = "t"

	// TimetablePathPrefix is the fixed prefix of every timetable path, both
	// on scraped anchors and on inbound /timetable requests.
	TimetablePathPrefix = "/train/timetable/"

	// Timetable pages mark the stop-number column with a fixed width; the
	// surrounding row container must have at least timetableMinCells direct
	// child cells to be a stop row.
	stopMarkerSelector = `div[style*="width:35px;"]`
	timetableMinCells  = 17
)

// timetableLinkPattern recovers slug and internal id from a timetable
// anchor: /train/timetable/{slug}/{id}.
var timetableLinkPattern = regexp.MustCompile(`/train/timetable/([^/]+)/(\d+)`)

// Timetable stop-row cell positions.
const (
	ttCodeCell     = 2
	ttNameCell     = 3
	ttArrivesCell  = 6
	ttDepartsCell  = 8
	ttPlatformCell = 11
)

// Layout selects the cell-position scheme for a departure block. The source
// renders two different grids depending on whether the search carried a
// destination filter, so the caller picks the layout from that parameter,
// never by sniffing the markup.
type Layout int

const (
	// LayoutDirect applies when a destination filter was supplied; cells are
	// the block's un-nested child divs.
	LayoutDirect Layout = iota
	// LayoutRouted applies when no destination was supplied; cells are the
	// bordered divs matched by routedCellSelector.
	LayoutRouted
)

// departurePositions maps output fields to cell indices for one layout.
//
// ArrivalTime/DepartureTime are intentionally crossed relative to the cells
// the source renders them in: the upstream UI labels the columns opposite
// to their content, and consumers depend on the served labels. Do not
// "fix" the mapping.
type departurePositions struct {
	TrainNo       int
	Name          int
	Type          int
	Zone          int
	Platform      int
	From          int
	To            int
	ArrivalTime   int
	DepartureTime int
}

var departureLayouts = map[Layout]departurePositions{
	LayoutDirect: {
		TrainNo: 0, Name: 1, Type: 2, Zone: 3,
		From: 4, Platform: 5, ArrivalTime: 6, To: 7, DepartureTime: 9,
	},
	LayoutRouted: {
		TrainNo: 0, Name: 1, Type: 2, Zone: 3,
		Platform: 4, From: 6, ArrivalTime: 7, To: 8, DepartureTime: 9,
	},
}
