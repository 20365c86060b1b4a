package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReferralSource(t *testing.T) {
	tests := []struct {
		raw    string
		want   ReferralSource
		wantOK bool
	}{
		{raw: "Social Media", want: ReferralSourceSocialMedia, wantOK: true},
		{raw: "search engine", want: ReferralSourceSearchEngine, wantOK: true},
		{raw: "  BLOG ", want: ReferralSourceBlog, wantOK: true},
		{raw: "social   media", want: ReferralSourceSocialMedia, wantOK: true},
		{raw: "other", want: ReferralSourceOther, wantOK: true},
		{raw: "Podcast", wantOK: false},
		{raw: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseReferralSource(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReferralSources_DisplayOrder(t *testing.T) {
	assert.Equal(t, []ReferralSource{
		"Social Media", "Friend", "Search Engine", "Blog", "Other",
	}, ReferralSources())

	assert.True(t, ReferralSourceOther.IsOther())
	assert.False(t, ReferralSourceBlog.IsOther())
	assert.False(t, ReferralSource("Podcast").IsKnown())
}
