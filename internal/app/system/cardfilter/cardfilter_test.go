package cardfilter_test

import (
	"testing"

	"github.com/bmitrev/campusfolio/internal/app/system/cardfilter"
	"github.com/bmitrev/campusfolio/internal/domain/models"
)

func card(name, program, university, year string) models.Card {
	return models.Card{FullName: name, Program: program, University: university, Year: year}
}

func TestMatches_QueryCaseInsensitiveSubstring(t *testing.T) {
	c := card("Jana Stojanova", "CS", "UKIM", "2025")

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"jana", true},
		{"STOJ", true},
		{"ana", true}, // substring, not prefix
		{"petar", false},
	}

	for _, tt := range tests {
		s := cardfilter.State{Query: tt.query}
		if got := s.Matches(c); got != tt.want {
			t.Errorf("Query %q: Matches = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestMatches_EmptyDimensionMatchesAll(t *testing.T) {
	c := card("A", "CS", "UKIM", "2025")
	s := cardfilter.State{}
	if !s.Matches(c) {
		t.Error("zero state must match every card")
	}
}

func TestMatches_DimensionsANDTogether(t *testing.T) {
	c := card("A", "CS", "UKIM", "2025")

	s := cardfilter.State{Programs: []string{"CS"}, Universities: []string{"SEEU"}}
	if s.Matches(c) {
		t.Error("card matching one dimension but not another must be hidden")
	}

	s = cardfilter.State{Programs: []string{"CS"}, Universities: []string{"UKIM"}, Years: []string{"2025"}}
	if !s.Matches(c) {
		t.Error("card matching all selected dimensions must be visible")
	}
}

func TestApply_ProgramComposition(t *testing.T) {
	cards := []models.Card{
		card("One", "A", "U1", "2024"),
		card("Two", "A", "U2", "2025"),
		card("Three", "B", "U1", "2024"),
	}

	// Selecting program A with empty university/year selections must
	// show exactly the two A-program cards.
	s := cardfilter.State{Programs: []string{"A"}}
	got := s.Apply(cards)
	if len(got) != 2 {
		t.Fatalf("expected 2 visible cards, got %d", len(got))
	}
	if got[0].FullName != "One" || got[1].FullName != "Two" {
		t.Errorf("expected order preserved, got %q, %q", got[0].FullName, got[1].FullName)
	}
}

func TestApply_ZeroStateReturnsAll(t *testing.T) {
	cards := []models.Card{card("One", "A", "U1", "2024"), card("Two", "B", "U2", "2025")}
	got := cardfilter.State{}.Apply(cards)
	if len(got) != len(cards) {
		t.Errorf("expected all %d cards, got %d", len(cards), len(got))
	}
}

func TestProgramOptions_DistinctAndSorted(t *testing.T) {
	cards := []models.Card{
		card("One", "Software Engineering", "U1", "2024"),
		card("Two", "Computer Science", "U2", "2025"),
		card("Three", "Software Engineering", "U1", "2024"),
		card("Four", "", "U1", "2024"),
	}

	opts := cardfilter.ProgramOptions(cards, nil)
	if len(opts) != 2 {
		t.Fatalf("expected 2 distinct programs, got %d", len(opts))
	}
	if opts[0].Label != "Computer Science" || opts[1].Label != "Software Engineering" {
		t.Errorf("expected sorted labels, got %v", opts)
	}
}

func TestProgramOptions_PreservesSelection(t *testing.T) {
	cards := []models.Card{
		card("One", "A", "U1", "2024"),
		card("Two", "B", "U2", "2025"),
	}

	opts := cardfilter.ProgramOptions(cards, []string{"B", "Gone"})
	for _, o := range opts {
		wantSel := o.Label == "B"
		if o.Selected != wantSel {
			t.Errorf("option %q: Selected = %v, want %v", o.Label, o.Selected, wantSel)
		}
	}
}
