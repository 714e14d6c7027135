// Package app wires configuration, the scrape pipeline, the exporter and run history into one run.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"f1jobs/internal/config"
	"f1jobs/internal/domain"
	"f1jobs/internal/export"
	"f1jobs/internal/scrape"
	"f1jobs/internal/store"
)

type Options struct {
	Config config.Config
	Out    io.Writer

	// Registry and Fetcher replace the ones built from Config when set.
	Registry *scrape.Registry
	Fetcher  scrape.PageFetcher

	// Teams limits the run to these ids when non-empty.
	Teams []string
}

type Result struct {
	Aggregate *domain.JobsAggregate
	Reports   []scrape.TeamReport
	Elapsed   time.Duration
}

// Run executes one full scrape and writes the workbook. Any returned error is fatal for the process.
func Run(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()
	cfg := opts.Config
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	reg := opts.Registry
	if reg == nil {
		r, err := scrape.NewRegistry(cfg.Teams)
		if err != nil {
			return Result{}, err
		}
		reg = r
	}
	if len(opts.Teams) > 0 {
		r, err := reg.Only(opts.Teams...)
		if err != nil {
			return Result{}, err
		}
		reg = r
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = scrape.NewHTTPFetcher(time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second, cfg.HTTP.UserAgent)
	}

	p := &scrape.Pipeline{
		Registry:       reg,
		Fetcher:        fetcher,
		Postprocessors: scrape.DefaultPostprocessors(),
		Policy:         scrape.PolicyFromConfig(cfg.Pipeline.OnExtractError),
		Out:            out,
	}

	fmt.Fprintln(out, Banner("Extracting F1 Jobs"))
	agg, reports, err := p.Run(ctx)
	if err != nil {
		return Result{Reports: reports}, err
	}

	if err := export.WriteWorkbook(cfg.Output.Path, agg); err != nil {
		return Result{Aggregate: agg, Reports: reports}, err
	}
	log.Printf("[export] wrote %s sheets=%d", cfg.Output.Path, agg.Len())

	res := Result{Aggregate: agg, Reports: reports, Elapsed: time.Since(start)}

	if cfg.History.Enabled {
		// history is a side log; a failure here does not undo the workbook
		if err := recordHistory(ctx, cfg, start, res); err != nil {
			log.Printf("[history] record failed: %v", err)
		}
	}

	fmt.Fprintf(out, "\nRuntime %.6f seconds\n", res.Elapsed.Seconds())
	return res, nil
}

func recordHistory(ctx context.Context, cfg config.Config, start time.Time, res Result) error {
	db, err := store.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := store.RecordRun(ctx, db.Pool, toRun(cfg.Output.Path, start, res))
	if err != nil {
		return err
	}
	log.Printf("[history] recorded run=%d teams=%d", id, len(res.Reports))
	return nil
}

func toRun(outputPath string, start time.Time, res Result) store.Run {
	run := store.Run{
		StartedAt:  start,
		Elapsed:    res.Elapsed,
		OutputPath: outputPath,
		Teams:      make([]store.TeamRun, 0, len(res.Reports)),
	}
	for _, r := range res.Reports {
		tr := store.TeamRun{
			TeamID:  r.TeamID,
			Status:  r.Status,
			Rows:    r.Rows,
			Skipped: r.Skipped,
		}
		if r.Err != nil {
			tr.Error = r.Err.Error()
		}
		if t, ok := res.Aggregate.Get(r.TeamID); ok {
			tr.Table = &t
		}
		run.Teams = append(run.Teams, tr)
	}
	return run
}

// Banner centers word in a 100-wide line of stars.
func Banner(word string) string {
	const width = 100
	stars := width - len(word)
	if stars < 0 {
		stars = 0
	}
	before := stars / 2
	after := stars - before
	return strings.Repeat("*", before) + " " + word + " " + strings.Repeat("*", after)
}
