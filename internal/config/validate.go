package config

import (
	"fmt"
	"strings"

	"f1jobs/internal/domain"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Team ids become sheet names ("{id}-{count}"), so they follow Excel's sheet-name rules.
const (
	sheetForbiddenChars = `:\/?*[]`
	// Ids sharing this many leading runes (ignoring case) can truncate to the same sheet name.
	sheetIDPrefixRunes = 25
)

func sheetKey(id string) string {
	r := []rune(strings.ToLower(id))
	if len(r) > sheetIDPrefixRunes {
		r = r[:sheetIDPrefixRunes]
	}
	return string(r)
}

// NormalizeAndValidate returns a trimmed copy of cfg and everything wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Output.Path = strings.TrimSpace(out.Output.Path)
	out.History.Path = strings.TrimSpace(out.History.Path)
	out.Pipeline.OnExtractError = strings.ToLower(strings.TrimSpace(out.Pipeline.OnExtractError))
	if out.Pipeline.OnExtractError == "" {
		out.Pipeline.OnExtractError = OnExtractErrorIsolate
	}

	teams := make([]Team, len(cfg.Teams))
	copy(teams, cfg.Teams)
	out.Teams = teams

	if out.HTTP.TimeoutSeconds <= 0 {
		res.addErr("http.timeout_seconds must be > 0")
	} else if out.HTTP.TimeoutSeconds > 300 {
		res.addWarn("http.timeout_seconds is very high (%d); a dead site will stall the whole run.", out.HTTP.TimeoutSeconds)
	}
	if strings.TrimSpace(out.HTTP.UserAgent) == "" {
		res.addErr("http.user_agent is required")
	}

	if out.Output.Path == "" {
		res.addErr("output.path is required")
	} else if !strings.HasSuffix(strings.ToLower(out.Output.Path), ".xlsx") {
		res.addWarn("output.path %q does not end in .xlsx", out.Output.Path)
	}

	switch out.Pipeline.OnExtractError {
	case OnExtractErrorIsolate, OnExtractErrorAbort:
	default:
		res.addErr("pipeline.on_extract_error must be %q or %q", OnExtractErrorIsolate, OnExtractErrorAbort)
	}

	if out.History.Enabled && out.History.Path == "" {
		res.addErr("history.path is required when history.enabled=true")
	}

	if len(out.Teams) == 0 {
		res.addWarn("teams is empty; the workbook will have no job sheets.")
	}

	seen := map[string]bool{}
	sheets := map[string]int{}
	for i := range out.Teams {
		t := &out.Teams[i]
		t.ID = strings.TrimSpace(t.ID)
		t.URL = strings.TrimSpace(t.URL)
		t.Extractor = strings.ToLower(strings.TrimSpace(t.Extractor))

		if t.ID == "" {
			res.addErr("teams[%d].id is required", i)
		} else if seen[t.ID] {
			res.addErr("teams[%d].id %q is duplicated", i, t.ID)
		}
		seen[t.ID] = true

		if t.ID != "" && !t.Excluded {
			if strings.ContainsAny(t.ID, sheetForbiddenChars) {
				res.addErr("teams[%d].id %q must not contain any of %s", i, t.ID, sheetForbiddenChars)
			}
			if strings.HasPrefix(t.ID, "'") || strings.HasSuffix(t.ID, "'") {
				res.addErr("teams[%d].id %q must not start or end with an apostrophe", i, t.ID)
			}
			k := sheetKey(t.ID)
			if j, dup := sheets[k]; dup && out.Teams[j].ID != t.ID {
				res.addErr("teams[%d].id %q collides with teams[%d].id %q as a sheet name", i, t.ID, j, out.Teams[j].ID)
			} else if !dup {
				sheets[k] = i
			}
		}

		if t.URL == "" && !t.Excluded {
			res.addErr("teams[%d].url is required", i)
		}
		if t.Extractor == "" {
			res.addErr("teams[%d].extractor is required", i)
		}
		p, err := domain.ParseRequestProfile(t.Profile)
		if err != nil {
			res.addErr("teams[%d].profile: %v", i, err)
		} else if t.Body != "" && p != domain.PostJSON {
			res.addWarn("teams[%d].body is ignored for profile %s", i, p)
		}
		if t.InsecureTLS {
			res.addWarn("team %q skips TLS certificate verification", t.ID)
		}
	}

	return out, res
}
