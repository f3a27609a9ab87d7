package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Weekday keys used by availability maps
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// WeeklyAvailability maps a lower-case weekday name to ordered "HH:MM" slots
type WeeklyAvailability map[string][]string

// SlotsFor returns the slots advertised for the weekday of t
func (w WeeklyAvailability) SlotsFor(t time.Time) []string {
	return w[WeekdayKey(t.Weekday())]
}

// WeekdayKey converts a time.Weekday into the availability map key
func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// Doctor is read-only reference data from the static catalog
type Doctor struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Specialty    string             `json:"specialty"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Image        string             `json:"image,omitempty"`
	Rating       decimal.Decimal    `json:"rating"`
	Experience   string             `json:"experience"`
	Availability WeeklyAvailability `json:"availability"`
	Bio          string             `json:"bio"`
	Credentials  []string           `json:"credentials"`
}

func (d Doctor) EntityID() string {
	return d.ID
}

// ExperienceYears parses the leading integer of Experience ("15 years" -> 15).
// Unparseable values count as zero.
func (d *Doctor) ExperienceYears() int {
	digits := strings.TrimSpace(d.Experience)
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}
	years, err := strconv.Atoi(digits[:end])
	if err != nil {
		return 0
	}
	return years
}

// AsUser builds the session user for a doctor that logged in with a demo account
func (d *Doctor) AsUser(email string) User {
	return User{
		ID:          d.ID,
		Name:        d.Name,
		Email:       email,
		Role:        RoleDoctor,
		Phone:       d.Phone,
		Specialty:   d.Specialty,
		Experience:  d.Experience,
		Bio:         d.Bio,
		Credentials: d.Credentials,
	}
}

// DoctorAccount is a hardcoded demo credential bound to a catalog doctor
type DoctorAccount struct {
	Email    string
	Password string
	DoctorID string
}

// Doctor sort keys
const (
	DoctorSortRating     = "rating"
	DoctorSortExperience = "experience"
	DoctorSortName       = "name"
)

// DoctorFilter is a domain-level filter for browsing the catalog
type DoctorFilter struct {
	Search    string // case-insensitive match on name or specialty
	Specialty string // exact specialty
	SortBy    string // rating | experience | name; empty keeps catalog order
}
