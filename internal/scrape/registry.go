package scrape

import (
	"fmt"

	"f1jobs/internal/config"
	"f1jobs/internal/domain"
	"f1jobs/internal/scrape/extract"
)

// Registry is the ordered, read-only team roster for one run.
type Registry struct {
	entries []domain.TeamEntry
	byID    map[string]int
}

// NewRegistry resolves configured teams into entries, keeping their order.
func NewRegistry(teams []config.Team) (*Registry, error) {
	entries := make([]domain.TeamEntry, 0, len(teams))
	for _, t := range teams {
		profile, err := domain.ParseRequestProfile(t.Profile)
		if err != nil {
			return nil, fmt.Errorf("team %q: %w", t.ID, err)
		}
		fn, err := extract.Lookup(t.Extractor)
		if err != nil {
			return nil, fmt.Errorf("team %q: %w", t.ID, err)
		}
		entries = append(entries, domain.TeamEntry{
			ID:          t.ID,
			SourceURL:   t.URL,
			Profile:     profile,
			Body:        t.Body,
			Extractor:   fn,
			Excluded:    t.Excluded,
			InsecureTLS: t.InsecureTLS,
		})
	}
	return NewRegistryFromEntries(entries...)
}

func NewRegistryFromEntries(entries ...domain.TeamEntry) (*Registry, error) {
	r := &Registry{
		entries: make([]domain.TeamEntry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("registry: team with empty id")
		}
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("registry: duplicate team %q", e.ID)
		}
		if e.Extractor == nil && !e.Excluded {
			return nil, fmt.Errorf("registry: team %q has no extractor", e.ID)
		}
		r.byID[e.ID] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

func (r *Registry) Get(teamID string) (domain.TeamEntry, bool) {
	i, ok := r.byID[teamID]
	if !ok {
		return domain.TeamEntry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of the roster in declared order.
func (r *Registry) Entries() []domain.TeamEntry {
	out := make([]domain.TeamEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) Len() int { return len(r.entries) }

// Only narrows the registry to the named teams, keeping declared order.
func (r *Registry) Only(ids ...string) (*Registry, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := r.Get(id); !ok {
			return nil, fmt.Errorf("registry: unknown team %q", id)
		}
		want[id] = true
	}

	var picked []domain.TeamEntry
	for _, e := range r.entries {
		if want[e.ID] {
			picked = append(picked, e)
		}
	}
	return NewRegistryFromEntries(picked...)
}
