package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"f1jobs/internal/domain"
)

type TeamRun struct {
	TeamID  string
	Status  int
	Rows    int
	Skipped string
	Error   string
	Table   *domain.TeamTable // nil for skipped teams
}

type Run struct {
	ID         int64
	StartedAt  time.Time
	Elapsed    time.Duration
	OutputPath string
	Teams      []TeamRun
}

// RecordRun stores one run with its per-team outcomes and extracted rows.
func RecordRun(ctx context.Context, db *sql.DB, run Run) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
INSERT INTO runs(started_at, elapsed_ms, output_path)
VALUES(?,?,?);`,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.Elapsed.Milliseconds(),
		run.OutputPath,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for pos, tr := range run.Teams {
		headersB := []byte("[]")
		if tr.Table != nil {
			b, err := json.Marshal(tr.Table.Headers)
			if err != nil {
				return 0, fmt.Errorf("encode headers %q: %w", tr.TeamID, err)
			}
			headersB = b
		}
		res, err := tx.ExecContext(ctx, `
INSERT INTO team_runs(run_id, position, team, status, row_count, skipped, error, headers)
VALUES(?,?,?,?,?,?,?,?);`,
			runID, pos, tr.TeamID, tr.Status, tr.Rows, tr.Skipped, tr.Error, string(headersB),
		)
		if err != nil {
			return 0, fmt.Errorf("insert team run %q: %w", tr.TeamID, err)
		}
		if tr.Table == nil {
			continue
		}
		teamRunID, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		for i, row := range tr.Table.Rows {
			fieldsB, err := json.Marshal([]string(row))
			if err != nil {
				return 0, fmt.Errorf("encode job %q/%d: %w", tr.TeamID, i, err)
			}
			if _, err := tx.ExecContext(ctx, `
INSERT INTO jobs(team_run_id, position, fields)
VALUES(?,?,?);`, teamRunID, i, string(fieldsB)); err != nil {
				return 0, fmt.Errorf("insert job %q/%d: %w", tr.TeamID, i, err)
			}
		}
	}

	return runID, tx.Commit()
}

// LastRuns returns up to limit runs, newest first, with their team outcomes (rows not loaded).
func LastRuns(ctx context.Context, db *sql.DB, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.QueryContext(ctx, `
SELECT id, started_at, elapsed_ms, output_path
FROM runs
ORDER BY id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}

	var out []Run
	for rows.Next() {
		var r Run
		var startedStr string
		var elapsedMS int64
		if err := rows.Scan(&r.ID, &startedStr, &elapsedMS, &r.OutputPath); err != nil {
			rows.Close()
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range out {
		teams, err := teamRuns(ctx, db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Teams = teams
	}
	return out, nil
}

func teamRuns(ctx context.Context, db *sql.DB, runID int64) ([]TeamRun, error) {
	rows, err := db.QueryContext(ctx, `
SELECT team, status, row_count, skipped, error
FROM team_runs
WHERE run_id = ?
ORDER BY position;`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TeamRun
	for rows.Next() {
		var tr TeamRun
		if err := rows.Scan(&tr.TeamID, &tr.Status, &tr.Rows, &tr.Skipped, &tr.Error); err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

// TeamJobs loads the stored table for one team in one run.
func TeamJobs(ctx context.Context, db *sql.DB, runID int64, team string) (domain.TeamTable, error) {
	t := domain.TeamTable{TeamID: team}

	var teamRunID int64
	var headersJSON string
	err := db.QueryRowContext(ctx, `
SELECT id, headers FROM team_runs WHERE run_id = ? AND team = ? LIMIT 1;`, runID, team).Scan(&teamRunID, &headersJSON)
	if err == sql.ErrNoRows {
		return t, fmt.Errorf("run %d has no team %q", runID, team)
	}
	if err != nil {
		return t, err
	}
	if err := json.Unmarshal([]byte(headersJSON), &t.Headers); err != nil {
		return t, fmt.Errorf("decode headers: %w", err)
	}

	rows, err := db.QueryContext(ctx, `
SELECT fields FROM jobs WHERE team_run_id = ? ORDER BY position;`, teamRunID)
	if err != nil {
		return t, err
	}
	defer rows.Close()

	for rows.Next() {
		var fieldsJSON string
		if err := rows.Scan(&fieldsJSON); err != nil {
			return t, err
		}
		var row domain.JobRow
		if err := json.Unmarshal([]byte(fieldsJSON), &row); err != nil {
			return t, fmt.Errorf("decode job row: %w", err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, rows.Err()
}
