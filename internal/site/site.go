package site

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const ProfileFile = "site.toml"

// Profile is the business information shared by every page.
type Profile struct {
	Name         string        `toml:"name"`
	Region       string        `toml:"region"`
	Tagline      string        `toml:"tagline"`
	Phone        string        `toml:"phone"`
	PhoneHref    string        `toml:"phone_href"`
	Email        string        `toml:"email"`
	Founded      int           `toml:"founded"`
	HoursSummary string        `toml:"hours_summary"`
	Hours        []Hours       `toml:"hours"`
	Team         []Member      `toml:"team"`
	Testimonials []Testimonial `toml:"testimonials"`
}

type Hours struct {
	Day    string `toml:"day"`
	Open   string `toml:"open"`
	Closed bool   `toml:"closed"`
}

// Display is the opening time shown next to the day.
func (h Hours) Display() string {
	if h.Closed || strings.TrimSpace(h.Open) == "" {
		return "Closed"
	}
	return h.Open
}

type Member struct {
	Name  string `toml:"name"`
	Role  string `toml:"role"`
	Years int    `toml:"years"`
}

type Testimonial struct {
	Author   string `toml:"author"`
	Location string `toml:"location"`
	Quote    string `toml:"quote"`
}

func Load(fsys fs.FS) (Profile, error) {
	data, err := fs.ReadFile(fsys, ProfileFile)
	if err != nil {
		return Profile{}, fmt.Errorf("read %s: %w", ProfileFile, err)
	}

	return Parse(data)
}

func Parse(data []byte) (Profile, error) {
	var profile Profile
	if err := toml.Unmarshal(data, &profile); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, column := decodeErr.Position()
			return Profile{}, fmt.Errorf("parse %s:%d:%d: %w", ProfileFile, row, column, err)
		}
		return Profile{}, fmt.Errorf("parse %s: %w", ProfileFile, err)
	}

	if err := profile.validate(); err != nil {
		return Profile{}, err
	}

	return profile, nil
}

func (p Profile) validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return errors.New("site profile: name is required")
	case strings.TrimSpace(p.Phone) == "":
		return errors.New("site profile: phone is required")
	case strings.TrimSpace(p.Email) == "":
		return errors.New("site profile: email is required")
	}

	if p.PhoneHref != "" && !strings.HasPrefix(p.PhoneHref, "tel:") {
		return fmt.Errorf("site profile: phone_href %q must start with tel:", p.PhoneHref)
	}

	return nil
}

// Years is how long the business has been trading at now. It is zero when
// no founding year is set.
func (p Profile) Years(now time.Time) int {
	if p.Founded <= 0 || now.Year() < p.Founded {
		return 0
	}
	return now.Year() - p.Founded
}

// Title is "Name Region", e.g. "BestHair Gold Coast".
func (p Profile) Title() string {
	return strings.TrimSpace(p.Name + " " + p.Region)
}

func (p Profile) MailtoHref() string {
	return "mailto:" + p.Email
}
