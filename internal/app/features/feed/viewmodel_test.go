package feed_test

import (
	"reflect"
	"testing"

	"github.com/bmitrev/campusfolio/internal/app/features/feed"
	"github.com/bmitrev/campusfolio/internal/domain/models"
)

func card(name, university, program, year string) models.Card {
	return models.Card{FullName: name, University: university, Program: program, Year: year}
}

func TestBuildSections_GroupsByFirstSeenUniversity(t *testing.T) {
	// Input is newest-first, as the store returns it.
	cards := []models.Card{
		card("Newest", "UKIM", "CS", "2026"),
		card("Middle", "SEEU", "SE", "2025"),
		card("Oldest", "UKIM", "CS", "2024"),
	}

	sections := feed.BuildSections(cards)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}

	// First-seen order: UKIM appeared before SEEU.
	if sections[0].University != "UKIM" || sections[1].University != "SEEU" {
		t.Errorf("section order: got %q, %q", sections[0].University, sections[1].University)
	}

	// Newest-first preserved within a group.
	ukim := sections[0]
	if len(ukim.Cards) != 2 {
		t.Fatalf("expected 2 UKIM cards, got %d", len(ukim.Cards))
	}
	if ukim.Cards[0].FullName != "Newest" || ukim.Cards[1].FullName != "Oldest" {
		t.Errorf("card order in section: got %q, %q", ukim.Cards[0].FullName, ukim.Cards[1].FullName)
	}
}

func TestBuildSections_Idempotent(t *testing.T) {
	cards := []models.Card{
		card("A", "UKIM", "CS", "2026"),
		card("B", "SEEU", "SE", "2025"),
		card("C", "UKIM", "CS", "2024"),
	}

	first := feed.BuildSections(cards)
	second := feed.BuildSections(cards)
	if !reflect.DeepEqual(first, second) {
		t.Error("building the same list twice must yield identical sections")
	}
}

func TestBuildSections_EmptyUniversityBucketsAsOther(t *testing.T) {
	sections := feed.BuildSections([]models.Card{card("A", "", "CS", "2026")})
	if len(sections) != 1 || sections[0].University != "Other" {
		t.Errorf("expected single 'Other' section, got %+v", sections)
	}
}

func TestBuildCardVM_LinksRequireHTTPPrefix(t *testing.T) {
	c := models.Card{
		FullName:  "Jana Stojanova",
		LinkedIn:  "https://linkedin.com/in/jana",
		GitHub:    "github.com/jana", // no scheme: dropped silently
		Instagram: "",
		Twitter:   "  http://twitter.com/jana  ",
	}

	sections := feed.BuildSections([]models.Card{c})
	links := sections[0].Cards[0].Links
	if len(links) != 2 {
		t.Fatalf("expected 2 renderable links, got %d: %+v", len(links), links)
	}
	if links[0].Kind != "linkedin" || links[1].Kind != "twitter" {
		t.Errorf("unexpected link kinds: %+v", links)
	}
	if links[1].URL != "http://twitter.com/jana" {
		t.Errorf("expected trimmed URL, got %q", links[1].URL)
	}
}

func TestBuildCardVM_DerivesMissingInitials(t *testing.T) {
	c := models.Card{FullName: "Jane Q Public"}
	sections := feed.BuildSections([]models.Card{c})
	if got := sections[0].Cards[0].Initials; got != "JQP" {
		t.Errorf("initials: got %q, want %q", got, "JQP")
	}
}

func TestBuildCardVM_SplitsSkills(t *testing.T) {
	c := models.Card{FullName: "A", Skills: "Go, MongoDB, , Docker"}
	sections := feed.BuildSections([]models.Card{c})
	got := sections[0].Cards[0].SkillTags
	want := []string{"Go", "MongoDB", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("skill tags: got %v, want %v", got, want)
	}
}

func TestYears_DistinctSortedDescending(t *testing.T) {
	cards := []models.Card{
		card("A", "U", "P", "2024"),
		card("B", "U", "P", "2026"),
		card("C", "U", "P", "2024"),
		card("D", "U", "P", ""),
	}
	got := feed.Years(cards)
	want := []string{"2026", "2024"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("years: got %v, want %v", got, want)
	}
}

func TestUniversities_FirstSeenOrder(t *testing.T) {
	cards := []models.Card{
		card("A", "UKIM", "P", "2026"),
		card("B", "SEEU", "P", "2025"),
		card("C", "UKIM", "P", "2024"),
	}
	got := feed.Universities(cards)
	want := []string{"UKIM", "SEEU"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("universities: got %v, want %v", got, want)
	}
}
