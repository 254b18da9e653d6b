// package filter narrows an already-loaded collection to what the current selection allows.
//
// Filtering is a pure function of an immutable selection record and the collection:
// no I/O, no shared state, and the output keeps the input's relative order.
package filter

import (
	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
)

// State is the article filter selection. The zero value is normalized to [DefaultState].
type State struct {
	SearchQuery string               `json:"search_query"`
	Category    string               `json:"category"`
	Tag         string               `json:"tag"`
	Audience    models.AudienceLevel `json:"audience"`
}

// DefaultState selects everything.
func DefaultState() State {
	return State{Audience: models.AudienceAll}
}

// Clear resets every field at once.
func (s State) Clear() State {
	return DefaultState()
}

func (s State) WithSearch(q string) State {
	s.SearchQuery = q
	return s
}

func (s State) WithCategory(c string) State {
	s.Category = c
	return s
}

func (s State) WithTag(t string) State {
	s.Tag = t
	return s
}

func (s State) WithAudience(a models.AudienceLevel) State {
	s.Audience = a
	return s
}

// Normalize maps an empty or unknown audience to "all".
func (s State) Normalize() State {
	if !s.Audience.Valid() {
		s.Audience = models.AudienceAll
	}
	return s
}

// Active reports whether any field differs from the default selection.
func (s State) Active() bool {
	return s.Normalize() != DefaultState()
}

// query returns the trimmed, lowercased search text.
func (s State) query() string {
	return lower(shared.NormalizeSearch(s.SearchQuery))
}
