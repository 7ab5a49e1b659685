// Package cardfilter computes feed visibility from the active filter
// selections. The same predicate runs server-side (query params on the
// feed page) and is mirrored by the client script for instant
// filtering, so the two must stay in agreement.
package cardfilter

import (
	"sort"
	"strings"

	"github.com/bmitrev/campusfolio/internal/domain/models"
)

// State holds one snapshot of the filter controls. Empty slices mean
// "match all" for that dimension; the query is a case-insensitive
// substring match against the student's name.
type State struct {
	Query        string
	Programs     []string
	Universities []string
	Years        []string
}

// IsZero reports whether no filter is active.
func (s State) IsZero() bool {
	return s.Query == "" && len(s.Programs) == 0 && len(s.Universities) == 0 && len(s.Years) == 0
}

// Matches reports whether the card is visible under the current state.
// Each dimension is an OR within itself and the dimensions AND together.
func (s State) Matches(card models.Card) bool {
	if s.Query != "" && !strings.Contains(strings.ToLower(card.FullName), strings.ToLower(s.Query)) {
		return false
	}
	if !matchesDim(s.Programs, card.Program) {
		return false
	}
	if !matchesDim(s.Universities, card.University) {
		return false
	}
	return matchesDim(s.Years, card.Year)
}

// Apply returns the cards visible under the state, preserving order.
func (s State) Apply(cards []models.Card) []models.Card {
	if s.IsZero() {
		return cards
	}
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if s.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func matchesDim(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// ProgramOption is one entry in the program multi-select.
type ProgramOption struct {
	Label    string
	Selected bool
}

// ProgramOptions derives the program filter choices from the cards
// currently in the feed: the distinct program values, sorted for a
// stable sidebar, with prior selections preserved by label match.
func ProgramOptions(cards []models.Card, selected []string) []ProgramOption {
	sel := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		sel[s] = struct{}{}
	}

	seen := make(map[string]struct{})
	var opts []ProgramOption
	for _, c := range cards {
		p := strings.TrimSpace(c.Program)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		_, isSel := sel[p]
		opts = append(opts, ProgramOption{Label: p, Selected: isSel})
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i].Label < opts[j].Label })
	return opts
}
