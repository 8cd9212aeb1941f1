// Package forms validates the field sets submitted to create or edit venues,
// artists and shows, and converts them into records.
package forms

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"fyyur/internal/models"
)

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// VenueForm is the field set for creating or editing a venue.
type VenueForm struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	Genres             []string `json:"genres"`
	SeekingTalent      *bool    `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// Normalize trims surrounding whitespace from the text fields.
func (f *VenueForm) Normalize() {
	trim(&f.Name, &f.City, &f.State, &f.Address, &f.Phone, &f.ImageLink,
		&f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription)
	f.State = strings.ToUpper(f.State)
}

func (f VenueForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required.Error("name is required"), validation.Length(1, 120)),
		validation.Field(&f.City, validation.Required.Error("city is required"), validation.Length(1, 120)),
		validation.Field(&f.State, validation.Required.Error("state is required"), validation.In(anySlice(States)...)),
		validation.Field(&f.Address, validation.Required.Error("address is required"), validation.Length(1, 120)),
		validation.Field(&f.Phone, validation.Match(phonePattern).Error("phone must look like 555-555-5555")),
		validation.Field(&f.ImageLink, is.URL, validation.Length(0, 500)),
		validation.Field(&f.FacebookLink, is.URL, validation.Length(0, 120)),
		validation.Field(&f.WebsiteLink, is.URL, validation.Length(0, 120)),
		validation.Field(&f.Genres, validation.Required.Error("at least one genre is required"), validation.Each(validation.In(anySlice(Genres)...))),
		validation.Field(&f.SeekingDescription, validation.Length(0, 500)),
	)
}

// Venue converts the form into a venue record. Seeking talent defaults to
// true when the form leaves it out.
func (f VenueForm) Venue() models.Venue {
	return models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		Genres:             f.Genres,
		SeekingTalent:      boolOr(f.SeekingTalent, true),
		SeekingDescription: f.SeekingDescription,
	}
}

// ArtistForm is the field set for creating or editing an artist.
type ArtistForm struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       *bool    `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// Normalize trims surrounding whitespace from the text fields.
func (f *ArtistForm) Normalize() {
	trim(&f.Name, &f.City, &f.State, &f.Phone, &f.ImageLink, &f.FacebookLink,
		&f.WebsiteLink, &f.SeekingDescription)
	f.State = strings.ToUpper(f.State)
}

func (f ArtistForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required.Error("name is required"), validation.Length(1, 120)),
		validation.Field(&f.City, validation.Required.Error("city is required"), validation.Length(1, 120)),
		validation.Field(&f.State, validation.Required.Error("state is required"), validation.In(anySlice(States)...)),
		validation.Field(&f.Phone, validation.Match(phonePattern).Error("phone must look like 555-555-5555")),
		validation.Field(&f.Genres, validation.Required.Error("at least one genre is required"), validation.Each(validation.In(anySlice(Genres)...))),
		validation.Field(&f.ImageLink, is.URL, validation.Length(0, 500)),
		validation.Field(&f.FacebookLink, is.URL, validation.Length(0, 120)),
		validation.Field(&f.WebsiteLink, is.URL, validation.Length(0, 120)),
		validation.Field(&f.SeekingDescription, validation.Length(0, 500)),
	)
}

// Artist converts the form into an artist record. Seeking venue defaults to
// true when the form leaves it out.
func (f ArtistForm) Artist() models.Artist {
	return models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       boolOr(f.SeekingVenue, true),
		SeekingDescription: f.SeekingDescription,
	}
}

// ShowForm is the field set for listing a show.
type ShowForm struct {
	ArtistID  int64      `json:"artist_id"`
	VenueID   int64      `json:"venue_id"`
	StartTime *time.Time `json:"start_time"`
}

func (f ShowForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ArtistID, validation.Required.Error("artist_id is required"), validation.Min(int64(1))),
		validation.Field(&f.VenueID, validation.Required.Error("venue_id is required"), validation.Min(int64(1))),
	)
}

// Show converts the form into a show record. A missing start time defaults
// to now.
func (f ShowForm) Show(now time.Time) models.Show {
	start := now
	if f.StartTime != nil {
		start = *f.StartTime
	}
	return models.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: start,
	}
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
