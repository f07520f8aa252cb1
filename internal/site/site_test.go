package site

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleProfile = `
name = "BestHair"
region = "Gold Coast"
phone = "1300 BESTHAIR"
phone_href = "tel:1300BESTHAIR"
email = "info@besthair.com.au"
founded = 2008

[[hours]]
day = "Thursday"
open = "9:00 AM - 8:00 PM"

[[hours]]
day = "Sunday"
closed = true

[[team]]
name = "James Chen"
role = "Master Cutter"
years = 10

[[testimonials]]
author = "Emma K."
location = "Broadbeach"
quote = "Highly recommend!"
`

func TestLoad(t *testing.T) {
	t.Parallel()

	profile, err := Load(fstest.MapFS{ProfileFile: {Data: []byte(sampleProfile)}})
	require.NoError(t, err)

	require.Equal(t, "BestHair Gold Coast", profile.Title())
	require.Equal(t, "mailto:info@besthair.com.au", profile.MailtoHref())
	require.Len(t, profile.Hours, 2)
	require.Equal(t, "9:00 AM - 8:00 PM", profile.Hours[0].Display())
	require.Equal(t, "Closed", profile.Hours[1].Display())
	require.Equal(t, []Member{{Name: "James Chen", Role: "Master Cutter", Years: 10}}, profile.Team)
	require.Equal(t, "Broadbeach", profile.Testimonials[0].Location)
}

func TestYears(t *testing.T) {
	t.Parallel()

	profile := Profile{Founded: 2008}
	require.Equal(t, 16, profile.Years(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 0, profile.Years(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 0, Profile{}.Years(time.Now()))
}

func TestParseRejectsInvalidProfiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "syntax error", input: "name = "},
		{name: "missing name", input: `phone = "1"` + "\n" + `email = "a@b.c"`},
		{name: "missing email", input: `name = "x"` + "\n" + `phone = "1"`},
		{name: "bad phone href", input: `name = "x"` + "\n" + `phone = "1"` + "\n" + `email = "a@b.c"` + "\n" + `phone_href = "1300"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(fstest.MapFS{})
	require.Error(t, err)
}
