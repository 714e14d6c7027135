package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"f1jobs/internal/domain"
	"f1jobs/internal/scrape/util"
)

// jobs.redbull.com search API. The feed mixes the F1 team with academy and junior-series roles.
type redBullSearch struct {
	Total int          `json:"total"`
	Jobs  []redBullJob `json:"jobs"`
}

type redBullJob struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Function string `json:"jobFunction"`
	Location struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"location"`
	URL string `json:"url"`
}

const redBullJobsBase = "https://jobs.redbull.com"

var racingBullsHeaders = []string{"Title", "Category", "Function", "Location", "Link"}

func RacingBulls(raw string) ([]string, []domain.JobRow, error) {
	var res redBullSearch
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, nil, fmt.Errorf("racing_bulls decode: %w", err)
	}

	rows := make([]domain.JobRow, 0, len(res.Jobs))
	for _, j := range res.Jobs {
		title := util.CleanText(j.Title)
		if title == "" {
			continue
		}
		var byID string
		if id := strings.TrimSpace(j.ID); id != "" {
			byID = redBullJobsBase + "/int-en/" + id
		}
		link := util.FirstNonEmpty(util.ResolveURL(redBullJobsBase, j.URL), byID)
		rows = append(rows, domain.JobRow{
			title,
			util.CleanText(j.Category),
			util.CleanText(j.Function),
			util.JoinNonEmpty(", ", j.Location.City, j.Location.Country),
			link,
		})
	}
	return racingBullsHeaders, rows, nil
}
