package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	stage := "Blaze"
	empty := ""

	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{"stage name wins", Profile{FullName: "Ana Ruiz", StageName: &stage}, "Blaze"},
		{"falls back to legal name", Profile{FullName: "Ana Ruiz"}, "Ana Ruiz"},
		{"empty stage name falls back", Profile{FullName: "Ana Ruiz", StageName: &empty}, "Ana Ruiz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.DisplayName())
		})
	}
}

func TestLanguagesRoundTrip(t *testing.T) {
	var p Profile
	assert.Empty(t, p.GetLanguages())

	p.SetLanguages([]string{"español", "inglés"})
	assert.Equal(t, []string{"español", "inglés"}, p.GetLanguages())
}
