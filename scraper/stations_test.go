package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestExtractStationMatchesSinglePair(t *testing.T) {
	d := doc(t, `
<table class="dropdowntable">
  <tr><td>1001</td><td>NDLS</td><td>New Delhi</td><td>DLI</td><td>New Delhi Railway Station</td></tr>
  <tr><td></td><td></td><td>Delhi, India</td></tr>
</table>`)

	matches := ExtractStationMatches(d)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "1001", m.ID)
	assert.Equal(t, "NDLS", m.Code)
	assert.Equal(t, "New Delhi", m.Name)
	assert.Equal(t, "DLI", m.Division)
	assert.Equal(t, "New Delhi Railway Station", m.FullName)
	assert.Equal(t, "Delhi, India", m.Location)
}

func TestExtractStationMatchesTruncatedPair(t *testing.T) {
	// Secondary row has fewer than three cells: the whole pair is dropped,
	// never a partial match.
	d := doc(t, `
<table class="dropdowntable">
  <tr><td>1001</td><td>NDLS</td><td>New Delhi</td><td>DLI</td><td>New Delhi Railway Station</td></tr>
  <tr><td></td><td>short</td></tr>
</table>`)

	assert.Empty(t, ExtractStationMatches(d))
}

func TestExtractStationMatchesSkipsBadPairMidScan(t *testing.T) {
	d := doc(t, `
<table class="dropdowntable">
  <tr><td>1001</td><td>NDLS</td><td>New Delhi</td><td>DLI</td><td>New Delhi Railway Station</td></tr>
  <tr><td></td><td></td><td>Delhi, India</td></tr>
  <tr><td>too</td><td>few</td></tr>
  <tr><td></td><td></td><td>ignored</td></tr>
  <tr><td>2002</td><td>BCT</td><td>Mumbai Central</td><td>BCT</td><td>Mumbai Central Railway Station</td></tr>
  <tr><td></td><td></td><td>Mumbai, India</td></tr>
</table>`)

	matches := ExtractStationMatches(d)
	require.Len(t, matches, 2)
	assert.Equal(t, "NDLS", matches[0].Code)
	assert.Equal(t, "BCT", matches[1].Code)
}

func TestExtractStationMatchesNoTable(t *testing.T) {
	assert.Empty(t, ExtractStationMatches(doc(t, `<html><body><p>no results</p></body></html>`)))
}
