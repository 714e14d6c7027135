package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"f1jobs/internal/domain"
	"f1jobs/internal/scrape/util"
)

type WDResponse struct {
	Total       int         `json:"total"`
	JobPostings []WDPosting `json:"jobPostings"`
}

type WDPosting struct {
	Title         string   `json:"title"`
	ExternalPath  string   `json:"externalPath"`
	LocationsText string   `json:"locationsText"`
	PostedOn      string   `json:"postedOn"`
	BulletFields  []string `json:"bulletFields"`
}

// Public board the CXS endpoint backs; externalPath is relative to it.
const alpineBoard = "https://alliancewd.wd3.myworkdayjobs.com/alpine-racing-careers"

var alpineHeaders = []string{"Title", "Location", "Posted", "Requisition", "Link"}

func Alpine(raw string) ([]string, []domain.JobRow, error) {
	var jr WDResponse
	if err := json.Unmarshal([]byte(raw), &jr); err != nil {
		return nil, nil, fmt.Errorf("alpine decode: %w body=%s", err, truncate(raw, 240))
	}

	rows := make([]domain.JobRow, 0, len(jr.JobPostings))
	for _, p := range jr.JobPostings {
		title := util.CleanText(p.Title)
		if title == "" {
			continue
		}
		req := ""
		if len(p.BulletFields) > 0 {
			req = util.CleanText(p.BulletFields[0])
		}
		rows = append(rows, domain.JobRow{
			title,
			util.NormalizeLocation(p.LocationsText),
			util.CleanText(p.PostedOn),
			req,
			absoluteJobURL(alpineBoard, p.ExternalPath),
		})
	}
	return alpineHeaders, rows, nil
}

func absoluteJobURL(board, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(board, "/") + path
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
