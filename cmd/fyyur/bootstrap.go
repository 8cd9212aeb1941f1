package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/models"
)

// seedStore is the slice of the store the demo bootstrap needs.
type seedStore interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
}

type listingKey struct {
	name  string
	city  string
	state string
}

type seedShow struct {
	venue  string
	artist string
	start  time.Time
}

var demoVenues = []models.Venue{
	{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		WebsiteLink:        "https://www.themusicalhop.com",
		Genres:             []string{"Jazz", "Reggae", "Classical", "Folk"},
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		WebsiteLink:  "https://www.theduelingpianos.com",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
		Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
	},
}

var demoArtists = []models.Artist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             []string{"Rock n Roll"},
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		WebsiteLink:        "https://www.gunsnpetalsband.com",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		Genres:       []string{"Jazz"},
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		Genres:    []string{"Jazz", "Classical"},
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

var demoShows = []seedShow{
	{venue: "The Musical Hop", artist: "Guns N Petals", start: time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC)},
	{venue: "Park Square Live Music & Coffee", artist: "Matt Quevedo", start: time.Date(2019, time.June, 15, 23, 0, 0, 0, time.UTC)},
	{venue: "Park Square Live Music & Coffee", artist: "The Wild Sax Band", start: time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)},
	{venue: "Park Square Live Music & Coffee", artist: "The Wild Sax Band", start: time.Date(2035, time.April, 8, 20, 0, 0, 0, time.UTC)},
	{venue: "Park Square Live Music & Coffee", artist: "The Wild Sax Band", start: time.Date(2035, time.April, 15, 20, 0, 0, 0, time.UTC)},
}

// bootstrapDemoData inserts the sample listings. Records that already exist
// are skipped, so running it repeatedly is safe.
func bootstrapDemoData(ctx context.Context, dataStore seedStore) error {
	venueIDs, err := ensureDemoVenues(ctx, dataStore)
	if err != nil {
		return err
	}
	artistIDs, err := ensureDemoArtists(ctx, dataStore)
	if err != nil {
		return err
	}
	return ensureDemoShows(ctx, dataStore, venueIDs, artistIDs)
}

func ensureDemoVenues(ctx context.Context, dataStore seedStore) (map[string]int64, error) {
	existing, err := dataStore.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	known := make(map[listingKey]int64, len(existing))
	for _, v := range existing {
		known[listingKey{v.Name, v.City, v.State}] = v.ID
	}

	ids := make(map[string]int64, len(demoVenues))
	for _, v := range demoVenues {
		if id, ok := known[listingKey{v.Name, v.City, v.State}]; ok {
			log.Debug().Str("venue", v.Name).Msg("Skipping existing demo venue")
			ids[v.Name] = id
			continue
		}
		created, err := dataStore.CreateVenue(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("bootstrap venue %q: %w", v.Name, err)
		}
		ids[v.Name] = created.ID
	}
	return ids, nil
}

func ensureDemoArtists(ctx context.Context, dataStore seedStore) (map[string]int64, error) {
	existing, err := dataStore.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	known := make(map[listingKey]int64, len(existing))
	for _, a := range existing {
		known[listingKey{a.Name, a.City, a.State}] = a.ID
	}

	ids := make(map[string]int64, len(demoArtists))
	for _, a := range demoArtists {
		if id, ok := known[listingKey{a.Name, a.City, a.State}]; ok {
			log.Debug().Str("artist", a.Name).Msg("Skipping existing demo artist")
			ids[a.Name] = id
			continue
		}
		created, err := dataStore.CreateArtist(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("bootstrap artist %q: %w", a.Name, err)
		}
		ids[a.Name] = created.ID
	}
	return ids, nil
}

func ensureDemoShows(ctx context.Context, dataStore seedStore, venueIDs, artistIDs map[string]int64) error {
	existing, err := dataStore.ListShows(ctx)
	if err != nil {
		return fmt.Errorf("list shows: %w", err)
	}

	type showKey struct {
		venueID  int64
		artistID int64
		start    int64
	}
	known := make(map[showKey]bool, len(existing))
	for _, s := range existing {
		known[showKey{s.VenueID, s.ArtistID, s.StartTime.Unix()}] = true
	}

	for _, s := range demoShows {
		show := models.Show{VenueID: venueIDs[s.venue], ArtistID: artistIDs[s.artist], StartTime: s.start}
		if known[showKey{show.VenueID, show.ArtistID, show.StartTime.Unix()}] {
			continue
		}
		if _, err := dataStore.CreateShow(ctx, show); err != nil {
			return fmt.Errorf("bootstrap show %s at %s: %w", s.artist, s.venue, err)
		}
	}
	return nil
}
