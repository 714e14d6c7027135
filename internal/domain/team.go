package domain

import (
	"fmt"
	"strings"
)

// RequestProfile is the HTTP shape a career site needs before it answers with 200.
type RequestProfile int

const (
	PlainGet RequestProfile = iota
	GetWithUserAgent
	PostJSON
)

func (p RequestProfile) String() string {
	switch p {
	case PlainGet:
		return "plain_get"
	case GetWithUserAgent:
		return "get_with_user_agent"
	case PostJSON:
		return "post_json"
	default:
		return fmt.Sprintf("profile(%d)", int(p))
	}
}

func ParseRequestProfile(s string) (RequestProfile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain_get", "get":
		return PlainGet, nil
	case "get_with_user_agent", "get_ua":
		return GetWithUserAgent, nil
	case "post_json", "post":
		return PostJSON, nil
	}
	return PlainGet, fmt.Errorf("unknown request profile %q", s)
}

// Extractor turns one site's raw response into headers and rows.
type Extractor func(raw string) (headers []string, rows []JobRow, err error)

type TeamEntry struct {
	ID        string
	SourceURL string
	Profile   RequestProfile
	Body      string // POST payload, only used by PostJSON
	Extractor Extractor

	// Excluded teams are never fetched (decommissioned sources).
	Excluded bool
	// InsecureTLS skips certificate verification for this team only.
	InsecureTLS bool
}

type FetchResult struct {
	TeamID     string
	StatusCode int // 0 when the request never got a response
	RawContent string
}

func (r FetchResult) OK() bool { return r.StatusCode == 200 }
