package models

// StationMatch is one entry from the station-search dropdown on
// indiarailinfo. The upstream page renders each match as a pair of table
// rows; the location text comes from the secondary row.
type StationMatch struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Division string `json:"division"`
	FullName string `json:"full"`
	Location string `json:"location"`
}
