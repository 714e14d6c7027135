package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"f1jobs/internal/config"
	"f1jobs/internal/domain"
	"f1jobs/internal/scrape"
	"f1jobs/internal/store"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubFetcher struct {
	responses map[string]domain.FetchResult
	calls     []string
}

func (s *stubFetcher) Fetch(_ context.Context, e domain.TeamEntry) domain.FetchResult {
	s.calls = append(s.calls, e.ID)
	res, ok := s.responses[e.ID]
	if !ok {
		return domain.FetchResult{TeamID: e.ID, StatusCode: 200}
	}
	res.TeamID = e.ID
	return res
}

func static(headers []string, rows ...domain.JobRow) domain.Extractor {
	return func(string) ([]string, []domain.JobRow, error) { return headers, rows, nil }
}

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Output.Path = filepath.Join(dir, "output", "F1_Jobs.xlsx")
	cfg.History.Path = filepath.Join(dir, "output", "f1_jobs.db")
	return cfg
}

func sheets(t *testing.T, path string) map[string][][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	out := map[string][][]string{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		require.NoError(t, err)
		out[name] = rows
	}
	return out
}

func twoTeamRegistry(t *testing.T) *scrape.Registry {
	reg, err := scrape.NewRegistryFromEntries(
		domain.TeamEntry{ID: "A", SourceURL: "https://a.test", Extractor: static([]string{"Title", "Location"}, domain.JobRow{"Engineer", "UK"})},
		domain.TeamEntry{ID: "B", SourceURL: "https://b.test", Extractor: static([]string{"Title"}, domain.JobRow{"Ghost"})},
		domain.TeamEntry{ID: "Kick Sauber", SourceURL: "https://sauber.test", Excluded: true, Extractor: static([]string{"Title"}, domain.JobRow{"Never"})},
	)
	require.NoError(t, err)
	return reg
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	cfg.History.Enabled = true
	fetcher := &stubFetcher{responses: map[string]domain.FetchResult{"B": {StatusCode: 404}}}
	var out bytes.Buffer

	res, err := Run(context.Background(), Options{Config: cfg, Out: &out, Registry: twoTeamRegistry(t), Fetcher: fetcher})
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B"}, fetcher.calls)
	require.True(t, res.Aggregate.Has("A"))
	require.False(t, res.Aggregate.Has("B"))
	require.False(t, res.Aggregate.Has("Kick Sauber"))

	got := sheets(t, cfg.Output.Path)
	require.Equal(t, map[string][][]string{
		"A-1": {{"Title", "Location"}, {"Engineer", "UK"}},
	}, got)

	require.Contains(t, out.String(), "F1 Team: A\nStatus Code: 200")
	require.Contains(t, out.String(), "F1 Team: B\nStatus Code: 404")
	require.NotContains(t, out.String(), "Kick Sauber")
	require.Contains(t, out.String(), "Runtime ")

	db, err := store.Open(cfg.History.Path)
	require.NoError(t, err)
	defer db.Close()
	runs, err := store.LastRuns(context.Background(), db.Pool, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, []store.TeamRun{
		{TeamID: "A", Status: 200, Rows: 1},
		{TeamID: "B", Status: 404, Skipped: scrape.SkipStatus},
		{TeamID: "Kick Sauber", Skipped: scrape.SkipExcluded},
	}, runs[0].Teams)
}

func TestRunIsRepeatable(t *testing.T) {
	cfg := testConfig(t)
	newFetcher := func() *stubFetcher {
		return &stubFetcher{responses: map[string]domain.FetchResult{"B": {StatusCode: 500}}}
	}

	_, err := Run(context.Background(), Options{Config: cfg, Registry: twoTeamRegistry(t), Fetcher: newFetcher()})
	require.NoError(t, err)
	first := sheets(t, cfg.Output.Path)

	_, err = Run(context.Background(), Options{Config: cfg, Registry: twoTeamRegistry(t), Fetcher: newFetcher()})
	require.NoError(t, err)
	require.Equal(t, first, sheets(t, cfg.Output.Path))
}

func TestRunExtractorFailurePolicy(t *testing.T) {
	newRegistry := func() *scrape.Registry {
		reg, err := scrape.NewRegistryFromEntries(
			domain.TeamEntry{ID: "Broken", Extractor: func(string) ([]string, []domain.JobRow, error) {
				return nil, nil, errors.New("layout changed")
			}},
			domain.TeamEntry{ID: "Fine", Extractor: static([]string{"Title"}, domain.JobRow{"Strategist"})},
		)
		require.NoError(t, err)
		return reg
	}

	t.Run("isolate", func(t *testing.T) {
		cfg := testConfig(t)
		res, err := Run(context.Background(), Options{Config: cfg, Registry: newRegistry(), Fetcher: &stubFetcher{}})
		require.NoError(t, err)
		require.Equal(t, scrape.SkipExtractError, res.Reports[0].Skipped)
		require.Equal(t, []string{"Fine-1"}, keys(sheets(t, cfg.Output.Path)))
	})

	t.Run("abort", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Pipeline.OnExtractError = config.OnExtractErrorAbort
		fetcher := &stubFetcher{}
		_, err := Run(context.Background(), Options{Config: cfg, Registry: newRegistry(), Fetcher: fetcher})
		var xe *scrape.ExtractError
		require.True(t, errors.As(err, &xe))
		require.Equal(t, []string{"Broken"}, fetcher.calls)
		require.NoFileExists(t, cfg.Output.Path)
	})
}

func TestRunBuildsRegistryFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Teams = []config.Team{{ID: "Mclaren", URL: "https://x.test", Extractor: "nope"}}
	_, err := Run(context.Background(), Options{Config: cfg, Fetcher: &stubFetcher{}})
	require.Error(t, err)
}

func TestRunLimitedToTeams(t *testing.T) {
	cfg := testConfig(t)
	fetcher := &stubFetcher{}
	_, err := Run(context.Background(), Options{Config: cfg, Registry: twoTeamRegistry(t), Fetcher: fetcher, Teams: []string{"B"}})
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, fetcher.calls)
	require.Equal(t, []string{"B-1"}, keys(sheets(t, cfg.Output.Path)))

	_, err = Run(context.Background(), Options{Config: cfg, Registry: twoTeamRegistry(t), Fetcher: &stubFetcher{}, Teams: []string{"Z"}})
	require.ErrorContains(t, err, "unknown team")
}

func TestBanner(t *testing.T) {
	b := Banner("Extracting F1 Jobs")
	require.Len(t, b, 102)
	require.Contains(t, b, "* Extracting F1 Jobs *")
}

func keys(m map[string][][]string) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}
