// internal/app/features/feed/viewmodel.go
package feed

import (
	"sort"
	"strings"

	"github.com/bmitrev/campusfolio/internal/app/system/normalize"
	"github.com/bmitrev/campusfolio/internal/domain/models"
)

// Section is one university group in the feed.
type Section struct {
	University string
	Cards      []CardVM
}

// CardVM is a card prepared for rendering: skills split into tags,
// social links reduced to the ones that actually point somewhere.
type CardVM struct {
	FullName   string
	Initials   string
	University string
	Program    string
	Year       string
	Bio        string
	Email      string
	SkillTags  []string

	ProjectTitle       string
	ProjectDescription string

	Links []Link
}

// Link is a renderable social link. Values that don't start with
// "http" are dropped silently at view-model build time.
type Link struct {
	Kind string // linkedin | github | instagram | twitter
	URL  string
}

// BuildSections groups cards by university. Section order is the
// first-seen order of the (newest-first) input, and cards keep their
// input order within a section, so the newest card leads its group.
// The view model is rebuilt from scratch on every request; there is no
// cross-request section state to go stale.
func BuildSections(cards []models.Card) []Section {
	index := make(map[string]int)
	var sections []Section

	for _, c := range cards {
		uni := c.University
		if uni == "" {
			uni = "Other"
		}
		i, ok := index[uni]
		if !ok {
			i = len(sections)
			index[uni] = i
			sections = append(sections, Section{University: uni})
		}
		sections[i].Cards = append(sections[i].Cards, buildCardVM(c))
	}
	return sections
}

func buildCardVM(c models.Card) CardVM {
	initials := c.Initials
	if initials == "" {
		initials = normalize.Initials(c.FullName)
	}

	vm := CardVM{
		FullName:           c.FullName,
		Initials:           initials,
		University:         c.University,
		Program:            c.Program,
		Year:               c.Year,
		Bio:                c.Bio,
		Email:              c.Email,
		SkillTags:          normalize.Skills(c.Skills),
		ProjectTitle:       c.ProjectTitle,
		ProjectDescription: c.ProjectDescription,
	}

	for _, l := range []Link{
		{Kind: "linkedin", URL: c.LinkedIn},
		{Kind: "github", URL: c.GitHub},
		{Kind: "instagram", URL: c.Instagram},
		{Kind: "twitter", URL: c.Twitter},
	} {
		if strings.HasPrefix(strings.TrimSpace(l.URL), "http") {
			l.URL = strings.TrimSpace(l.URL)
			vm.Links = append(vm.Links, l)
		}
	}
	return vm
}

// Years returns the distinct class years present in the cards, sorted
// descending for the sidebar checkboxes.
func Years(cards []models.Card) []string {
	seen := make(map[string]struct{})
	var years []string
	for _, c := range cards {
		y := strings.TrimSpace(c.Year)
		if y == "" {
			continue
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

// Universities returns the distinct universities present in the cards,
// in first-seen order, matching the section order of the feed.
func Universities(cards []models.Card) []string {
	seen := make(map[string]struct{})
	var unis []string
	for _, c := range cards {
		u := strings.TrimSpace(c.University)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		unis = append(unis, u)
	}
	return unis
}
