package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"f1jobs/internal/domain"
	"f1jobs/internal/scrape/util"
)

// BambooHR careers/list payload.
type bambooList struct {
	Meta struct {
		TotalCount int `json:"totalCount"`
	} `json:"meta"`
	Result []bambooJob `json:"result"`
}

type bambooJob struct {
	ID               json.Number `json:"id"`
	JobOpeningName   string      `json:"jobOpeningName"`
	DepartmentLabel  string      `json:"departmentLabel"`
	EmploymentStatus string      `json:"employmentStatusLabel"`
	Location         struct {
		City  string `json:"city"`
		State string `json:"state"`
	} `json:"location"`
	ATSLocation struct {
		Country string `json:"country"`
	} `json:"atsLocation"`
	IsRemote *bool `json:"isRemote"`
}

const haasCareersBase = "https://haasf1team.bamboohr.com/careers/"

var haasHeaders = []string{"Title", "Department", "Employment Type", "Location", "Link"}

func Haas(raw string) ([]string, []domain.JobRow, error) {
	var res bambooList
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&res); err != nil {
		return nil, nil, fmt.Errorf("hass decode: %w", err)
	}

	rows := make([]domain.JobRow, 0, len(res.Result))
	for _, j := range res.Result {
		title := util.CleanText(j.JobOpeningName)
		if title == "" {
			continue
		}
		loc := util.JoinNonEmpty(", ", j.Location.City, j.Location.State, j.ATSLocation.Country)
		if j.IsRemote != nil && *j.IsRemote {
			loc = util.JoinNonEmpty(" - ", loc, "Remote")
		}
		link := ""
		if id := j.ID.String(); id != "" {
			link = haasCareersBase + id
		}
		rows = append(rows, domain.JobRow{
			title,
			util.CleanText(j.DepartmentLabel),
			util.CleanText(j.EmploymentStatus),
			util.NormalizeLocation(loc),
			link,
		})
	}
	return haasHeaders, rows, nil
}
