// Package export writes the run's job tables into a single workbook.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"f1jobs/internal/domain"

	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"
)

var (
	ErrWorkbookLocked = errors.New("workbook is locked by another run")
	// Excel compares sheet names case-insensitively.
	ErrSheetCollision = errors.New("sheet name already used")
)

// Excel rejects longer sheet names.
const maxSheetName = 31

// SheetName is "{team}-{count}". Long team ids are cut so the count always survives.
func SheetName(teamID string, rows int) string {
	suffix := "-" + strconv.Itoa(rows)
	name := teamID
	if utf8.RuneCountInString(name)+utf8.RuneCountInString(suffix) > maxSheetName {
		keep := maxSheetName - utf8.RuneCountInString(suffix)
		name = string([]rune(name)[:keep])
	}
	return name + suffix
}

// WriteWorkbook replaces the workbook at path with one sheet per table, in aggregate order.
func WriteWorkbook(path string, agg *domain.JobsAggregate) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrWorkbookLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := fill(f, agg); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func fill(f *excelize.File, agg *domain.JobsAggregate) error {
	defaultSheet := f.GetSheetName(0)
	used := map[string]string{}

	for i, t := range agg.Tables() {
		name := SheetName(t.TeamID, t.RowCount())
		key := strings.ToLower(name)
		if prev, dup := used[key]; dup {
			return fmt.Errorf("%w: %q for teams %q and %q", ErrSheetCollision, name, prev, t.TeamID)
		}
		used[key] = t.TeamID

		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}

		if err := writeRow(f, name, 1, t.Headers); err != nil {
			return err
		}
		for r, row := range t.Rows {
			if err := writeRow(f, name, r+2, row); err != nil {
				return err
			}
		}
	}

	f.SetActiveSheet(0)
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, vals []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(vals))
	for i, v := range vals {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("sheet %q row %d: %w", sheet, rowNum, err)
	}
	return nil
}
