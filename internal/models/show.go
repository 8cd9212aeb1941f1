package models

import "time"

// Show books one artist at one venue at a point in time.
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowListing is a show joined with the venue and artist it references.
type ShowListing struct {
	ShowID          int64
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistShow is a show as seen from a venue page.
type ArtistShow struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShow is a show as seen from an artist page. VenueID lets the page
// link back to the venue.
type VenueShow struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// ShowView is one row of the global show listing.
type ShowView struct {
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistSide projects the listing onto the artist that plays it.
func (l ShowListing) ArtistSide() ArtistShow {
	return ArtistShow{
		ArtistID:        l.ArtistID,
		ArtistName:      l.ArtistName,
		ArtistImageLink: l.ArtistImageLink,
		StartTime:       l.StartTime,
	}
}

// VenueSide projects the listing onto the venue that hosts it.
func (l ShowListing) VenueSide() VenueShow {
	return VenueShow{
		VenueID:        l.VenueID,
		VenueName:      l.VenueName,
		VenueImageLink: l.VenueImageLink,
		StartTime:      l.StartTime,
	}
}

// View flattens the listing for the global show page.
func (l ShowListing) View() ShowView {
	return ShowView{
		VenueID:         l.VenueID,
		VenueName:       l.VenueName,
		ArtistID:        l.ArtistID,
		ArtistName:      l.ArtistName,
		ArtistImageLink: l.ArtistImageLink,
		StartTime:       l.StartTime,
	}
}

// IsUpcoming reports whether a show starting at start has not started yet
// at now. A show starting exactly at now is upcoming.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// PartitionShows splits listings into past and upcoming, keeping their
// order, and projects each one with fn. Both results are non-nil.
func PartitionShows[T any](listings []ShowListing, now time.Time, fn func(ShowListing) T) (past, upcoming []T) {
	past = make([]T, 0, len(listings))
	upcoming = make([]T, 0, len(listings))
	for _, l := range listings {
		if IsUpcoming(l.StartTime, now) {
			upcoming = append(upcoming, fn(l))
		} else {
			past = append(past, fn(l))
		}
	}
	return past, upcoming
}
