package listing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/beyondui/internal/blog"
)

// Query parameter names used by the posts index.
const (
	ParamTerm = "q"
	ParamPage = "page"
)

// State is the user-controlled part of the index: search term and page.
type State struct {
	Term string
	Page int
}

// WithTerm sets the search term. A changed term starts over at page 1.
func (s State) WithTerm(term string) State {
	term = strings.TrimSpace(term)
	if term != s.Term {
		return State{Term: term, Page: 1}
	}
	return s
}

// WithPage moves to page.
func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

// ParseState reads the index state from query parameters. Missing or
// malformed pages read as 1.
func ParseState(values url.Values) State {
	state := State{Term: strings.TrimSpace(values.Get(ParamTerm)), Page: 1}
	if raw := strings.TrimSpace(values.Get(ParamPage)); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			state.Page = page
		}
	}
	return state
}

// Values encodes the state as query parameters, omitting defaults.
func (s State) Values() url.Values {
	values := url.Values{}
	if s.Term != "" {
		values.Set(ParamTerm, s.Term)
	}
	if s.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(s.Page))
	}
	return values
}

// View is the fully derived index for one state.
type View struct {
	State      State
	TotalPosts int
	Page       Page[blog.Post]
	Links      []PageLink
}

// Searching reports whether a search term narrows the view.
func (v View) Searching() bool { return v.State.Term != "" }

// Derive filters posts by state.Term, paginates with size and windows the
// page controls. The returned state carries the clamped page number.
func Derive(posts []blog.Post, state State, size int) View {
	state.Term = strings.TrimSpace(state.Term)
	filtered := Filter(posts, state.Term)
	page := Paginate(filtered, state.Page, size)
	state.Page = page.Number
	return View{
		State:      state,
		TotalPosts: len(posts),
		Page:       page,
		Links:      PageWindow(page.Number, page.TotalPages),
	}
}
