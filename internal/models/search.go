package models

// SearchMatch is one hit of a name search.
type SearchMatch struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResults is the response of a name search.
type SearchResults struct {
	Count int           `json:"count"`
	Data  []SearchMatch `json:"data"`
}
