package models

// DepartureRecord is one train row from a station search result page.
// TrainURL is a relative timetable path; it is empty when no internal id
// could be recovered from the page.
//
// DepartureTime and ArrivalTime follow the upstream display convention,
// which crosses the labels relative to the cells they are read from. See
// scraper/contract.go.
type DepartureRecord struct {
	TrainNo       string `json:"train_no"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Zone          string `json:"zone"`
	Platform      string `json:"platform"`
	FromStation   string `json:"from"`
	DepartureTime string `json:"departure_time"`
	ToStation     string `json:"to"`
	ArrivalTime   string `json:"arrival_time"`
	TrainURL      string `json:"train_url"`
}

// TimetableRow is a single stop on a train's timetable page.
type TimetableRow struct {
	Code        string `json:"code"`
	StationName string `json:"station_name"`
	Arrives     string `json:"arrives"`
	Departs     string `json:"departs"`
	Platform    string `json:"platform"`
}
