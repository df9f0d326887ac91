package models

// ErrorResponse is the failure body for the scraping endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MapErrorResponse is the failure body for the station-map endpoint.
type MapErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// AskAIResponse is the success body for the AI endpoint.
type AskAIResponse struct {
	OK       bool   `json:"ok"`
	Response string `json:"response"`
}

// AskAIErrorResponse is the failure body for the AI endpoint.
type AskAIErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// HealthResponse acknowledges liveness; Time is a unix timestamp.
type HealthResponse struct {
	OK   bool  `json:"ok"`
	Time int64 `json:"time"`
}
