package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"f1jobs/internal/config"
	"f1jobs/internal/domain"
)

// Policy decides what an extractor failure does to the run.
type Policy int

const (
	// Isolate logs the failure and leaves the team out of the workbook.
	Isolate Policy = iota
	// Abort stops the run; nothing is exported.
	Abort
)

func PolicyFromConfig(s string) Policy {
	if s == config.OnExtractErrorAbort {
		return Abort
	}
	return Isolate
}

const (
	SkipExcluded     = "excluded"
	SkipStatus       = "status"
	SkipExtractError = "extract_error"
)

// TeamReport is the outcome of one team in a run.
type TeamReport struct {
	TeamID  string
	Status  int
	Rows    int
	Skipped string // "" when the team made it into the aggregate
	Err     error
}

type Pipeline struct {
	Registry       *Registry
	Fetcher        PageFetcher
	Postprocessors Postprocessors
	Policy         Policy
	Out            io.Writer // progress lines; nil discards
}

// Run processes every team in registry order, one at a time.
func (p *Pipeline) Run(ctx context.Context) (*domain.JobsAggregate, []TeamReport, error) {
	if p.Registry == nil || p.Fetcher == nil {
		return nil, nil, errors.New("pipeline: registry and fetcher are required")
	}
	out := p.Out
	if out == nil {
		out = io.Discard
	}

	agg := domain.NewJobsAggregate()
	reports := make([]TeamReport, 0, p.Registry.Len())

	for _, entry := range p.Registry.Entries() {
		if err := ctx.Err(); err != nil {
			return nil, reports, err
		}

		rep := TeamReport{TeamID: entry.ID}
		if entry.Excluded {
			log.Printf("[pipeline] team=%q skipped (excluded)", entry.ID)
			rep.Skipped = SkipExcluded
			reports = append(reports, rep)
			continue
		}

		fmt.Fprintf(out, "\nF1 Team: %s\n", entry.ID)
		res := p.Fetcher.Fetch(ctx, entry)
		rep.Status = res.StatusCode
		fmt.Fprintf(out, "Status Code: %d\n", res.StatusCode)

		table, ok, err := Dispatch(entry, res)
		if err != nil {
			rep.Skipped = SkipExtractError
			rep.Err = err
			reports = append(reports, rep)
			if p.Policy == Abort {
				return nil, reports, err
			}
			log.Printf("[pipeline] team=%q omitted: %v", entry.ID, err)
			continue
		}
		if !ok {
			log.Printf("[pipeline] team=%q skipped status=%d", entry.ID, res.StatusCode)
			rep.Skipped = SkipStatus
			reports = append(reports, rep)
			continue
		}

		table = p.Postprocessors.Apply(table)
		agg.Add(table)
		rep.Rows = table.RowCount()
		reports = append(reports, rep)
		log.Printf("[pipeline] team=%q rows=%d", entry.ID, rep.Rows)
	}

	return agg, reports, nil
}
