package scrape

import (
	"sort"

	"f1jobs/internal/domain"
)

// Postprocess reorders or rewrites a team's table after extraction.
type Postprocess func(domain.TeamTable) domain.TeamTable

// Postprocessors maps a team id to its rule. Teams without a rule pass through unchanged.
type Postprocessors map[string]Postprocess

func DefaultPostprocessors() Postprocessors {
	return Postprocessors{
		// the feed mixes F1 roles with academy and junior-series ones
		"Racing Bulls": CategoryFirst("Category", "F1"),
	}
}

func (p Postprocessors) Apply(t domain.TeamTable) domain.TeamTable {
	fn, ok := p[t.TeamID]
	if !ok || fn == nil {
		return t
	}
	return fn(t)
}

// CategoryFirst moves rows whose column equals value ahead of the rest, keeping order inside each group.
func CategoryFirst(column, value string) Postprocess {
	return func(t domain.TeamTable) domain.TeamTable {
		col := t.Column(column)
		if col < 0 {
			return t
		}
		rows := make([]domain.JobRow, len(t.Rows))
		copy(rows, t.Rows)
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i][col] == value && rows[j][col] != value
		})
		t.Rows = rows
		return t
	}
}
