package domain

import "fmt"

// JobRow is one posting; its meaning is given by the owning table's headers.
type JobRow []string

type TeamTable struct {
	TeamID  string
	Headers []string
	Rows    []JobRow
}

func (t TeamTable) RowCount() int { return len(t.Rows) }

// Column returns the index of header name, or -1.
func (t TeamTable) Column(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Validate checks header uniqueness and that every row matches the header arity.
func (t TeamTable) Validate() error {
	seen := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		if seen[h] {
			return fmt.Errorf("team %q: duplicate header %q", t.TeamID, h)
		}
		seen[h] = true
	}
	for i, r := range t.Rows {
		if len(r) != len(t.Headers) {
			return fmt.Errorf("team %q: row %d has %d fields, want %d", t.TeamID, i, len(r), len(t.Headers))
		}
	}
	return nil
}

// JobsAggregate keeps team tables in insertion order.
type JobsAggregate struct {
	order  []string
	tables map[string]TeamTable
}

func NewJobsAggregate() *JobsAggregate {
	return &JobsAggregate{tables: make(map[string]TeamTable)}
}

// Add inserts a table. Re-adding a team replaces it without moving it.
func (a *JobsAggregate) Add(t TeamTable) {
	if _, ok := a.tables[t.TeamID]; !ok {
		a.order = append(a.order, t.TeamID)
	}
	a.tables[t.TeamID] = t
}

func (a *JobsAggregate) Get(teamID string) (TeamTable, bool) {
	t, ok := a.tables[teamID]
	return t, ok
}

func (a *JobsAggregate) Has(teamID string) bool {
	_, ok := a.tables[teamID]
	return ok
}

func (a *JobsAggregate) Len() int { return len(a.order) }

// Tables returns the tables in insertion order.
func (a *JobsAggregate) Tables() []TeamTable {
	out := make([]TeamTable, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.tables[id])
	}
	return out
}
