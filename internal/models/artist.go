package models

import "time"

// Artist represents a performer that plays shows at venues.
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// ArtistRef is the short form used on the artist index page.
type ArtistRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Ref returns the short form of the artist.
func (a Artist) Ref() ArtistRef {
	return ArtistRef{ID: a.ID, Name: a.Name}
}

// ArtistDetail is the artist page.
type ArtistDetail struct {
	Artist
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// NewArtistDetail builds the artist page from the artist and its shows. Shows
// must already be ordered by start time.
func NewArtistDetail(artist Artist, shows []ShowListing, now time.Time) ArtistDetail {
	past, upcoming := PartitionShows(shows, now, ShowListing.VenueSide)
	return ArtistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
