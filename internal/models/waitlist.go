package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ReferralSource string

const (
	ReferralSourceSocialMedia  ReferralSource = "Social Media"
	ReferralSourceFriend       ReferralSource = "Friend"
	ReferralSourceSearchEngine ReferralSource = "Search Engine"
	ReferralSourceBlog         ReferralSource = "Blog"
	ReferralSourceOther        ReferralSource = "Other"
)

// ReferralSources lists the selectable sources in display order.
func ReferralSources() []ReferralSource {
	return []ReferralSource{
		ReferralSourceSocialMedia,
		ReferralSourceFriend,
		ReferralSourceSearchEngine,
		ReferralSourceBlog,
		ReferralSourceOther,
	}
}

func (r ReferralSource) IsOther() bool {
	return r == ReferralSourceOther
}

func (r ReferralSource) IsKnown() bool {
	for _, source := range ReferralSources() {
		if r == source {
			return true
		}
	}
	return false
}

// ParseReferralSource maps loosely typed input ("search engine", " BLOG ") onto
// one of the known sources. The second return value is false when no source matches.
func ParseReferralSource(raw string) (ReferralSource, bool) {
	normalized := strings.Join(strings.Fields(raw), " ")
	if normalized == "" {
		return "", false
	}

	candidate := ReferralSource(cases.Title(language.English).String(strings.ToLower(normalized)))
	if !candidate.IsKnown() {
		return "", false
	}

	return candidate, true
}

// WaitlistSubmission is the payload relayed to the upstream workspace database.
// It is built once per submit and never stored locally.
type WaitlistSubmission struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Profession     string `json:"profession"`
	ReferralSource string `json:"referralSource"`
}
