package scrape

import (
	"fmt"
	"log"

	"f1jobs/internal/domain"
)

// ExtractError is an extractor failure for one team.
type ExtractError struct {
	TeamID string
	Err    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.TeamID, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// Dispatch runs the team's extractor on a 200 response. ok is false when the team produces no table.
// Rows whose arity does not match the headers are dropped.
func Dispatch(entry domain.TeamEntry, res domain.FetchResult) (table domain.TeamTable, ok bool, err error) {
	if !res.OK() {
		return domain.TeamTable{}, false, nil
	}

	headers, rows, err := runExtractor(entry, res.RawContent)
	if err != nil {
		return domain.TeamTable{}, false, &ExtractError{TeamID: entry.ID, Err: err}
	}

	table = domain.TeamTable{
		TeamID:  entry.ID,
		Headers: headers,
		Rows:    make([]domain.JobRow, 0, len(rows)),
	}
	for i, r := range rows {
		if len(r) != len(headers) {
			log.Printf("[dispatch] team=%q rejected row=%d fields=%d headers=%d", entry.ID, i, len(r), len(headers))
			continue
		}
		table.Rows = append(table.Rows, r)
	}

	if err := table.Validate(); err != nil {
		return domain.TeamTable{}, false, &ExtractError{TeamID: entry.ID, Err: err}
	}
	return table, true, nil
}

func runExtractor(entry domain.TeamEntry, raw string) (headers []string, rows []domain.JobRow, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("extractor panic: %v", p)
		}
	}()
	return entry.Extractor(raw)
}
