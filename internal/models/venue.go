package models

import "time"

// Venue represents a music venue that books artists.
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	Genres             []string `json:"genres"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// VenueSummary is a venue row on the grouped listing page.
type VenueSummary struct {
	Venue
	NumUpcomingShows int `json:"num_upcoming_shows"`
}

// Area groups the venues that share an exact city and state.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueDetail is the venue page: the stored record plus its shows split
// around the time the page was requested.
type VenueDetail struct {
	Venue
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// NewVenueDetail builds the venue page from the venue and its shows. Shows
// must already be ordered by start time.
func NewVenueDetail(venue Venue, shows []ShowListing, now time.Time) VenueDetail {
	past, upcoming := PartitionShows(shows, now, ShowListing.ArtistSide)
	return VenueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
