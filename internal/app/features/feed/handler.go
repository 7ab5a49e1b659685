// internal/app/features/feed/handler.go
package feed

import (
	"context"
	"net/http"
	"sort"

	"github.com/bmitrev/campusfolio/internal/app/features/cards"
	"github.com/bmitrev/campusfolio/internal/app/system/cardfilter"
	"github.com/bmitrev/campusfolio/internal/app/system/domains"
	"github.com/bmitrev/campusfolio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the feed page: all cards grouped by university, with
// the sidebar filters applied server-side from query parameters. The
// static client script mirrors the same filtering for instant updates.
type Handler struct {
	Store cards.CardStore
	Log   *zap.Logger
}

func NewHandler(store cards.CardStore, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

type pageData struct {
	Title string

	Sections []Section
	Total    int
	Visible  int

	Query           string
	ProgramOptions  []cardfilter.ProgramOption
	UniversityBoxes []checkbox
	YearBoxes       []checkbox

	FormUniversities []string

	LoadFailed bool
}

type checkbox struct {
	Label    string
	Selected bool
}

// ServeFeed handles GET /.
//
// The filter state comes entirely from the query string (q, program,
// university, year, the last three repeatable), so a filtered feed is
// a plain link and a reload recomputes everything from the full list.
func (h *Handler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := r.URL.Query()
	state := cardfilter.State{
		Query:        q.Get("q"),
		Programs:     q["program"],
		Universities: q["university"],
		Years:        q["year"],
	}

	data := pageData{
		Title:            "Student Portfolios",
		Query:            state.Query,
		FormUniversities: formUniversities(),
	}

	all, err := h.Store.List(ctx)
	if err != nil {
		// Render the page shell anyway: the client keeps whatever it
		// was showing and gets a "failed to load" notice.
		h.Log.Error("load feed failed", zap.Error(err))
		data.LoadFailed = true
		templates.Render(w, r, "feed", data)
		return
	}

	visible := state.Apply(all)

	data.Sections = BuildSections(visible)
	data.Total = len(all)
	data.Visible = len(visible)
	// Filter options always derive from the full list, so narrowing by
	// one dimension never hides the other options.
	data.ProgramOptions = cardfilter.ProgramOptions(all, state.Programs)
	data.UniversityBoxes = boxes(Universities(all), state.Universities)
	data.YearBoxes = boxes(Years(all), state.Years)

	templates.Render(w, r, "feed", data)
}

func boxes(labels, selected []string) []checkbox {
	sel := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		sel[s] = struct{}{}
	}
	out := make([]checkbox, 0, len(labels))
	for _, l := range labels {
		_, ok := sel[l]
		out = append(out, checkbox{Label: l, Selected: ok})
	}
	return out
}

func formUniversities() []string {
	names := make([]string, 0, len(domains.Catalog))
	for name := range domains.Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
