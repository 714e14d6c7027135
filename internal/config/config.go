// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Team struct {
	ID          string `yaml:"id"`
	URL         string `yaml:"url"`
	Profile     string `yaml:"profile"` // plain_get | get_with_user_agent | post_json
	Body        string `yaml:"body,omitempty"`
	Extractor   string `yaml:"extractor"`
	Excluded    bool   `yaml:"excluded,omitempty"`
	InsecureTLS bool   `yaml:"insecure_tls,omitempty"`
}

type Config struct {
	HTTP struct {
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
	} `yaml:"http"`

	Output struct {
		Path string `yaml:"path"`
	} `yaml:"output"`

	Pipeline struct {
		OnExtractError string `yaml:"on_extract_error"` // isolate | abort
	} `yaml:"pipeline"`

	History struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"history"`

	Teams []Team `yaml:"teams"`
}

const (
	OnExtractErrorIsolate = "isolate"
	OnExtractErrorAbort   = "abort"
)

// Default returns the compiled-in configuration. Running without a config file uses it as-is.
func Default() Config {
	var cfg Config
	cfg.HTTP.TimeoutSeconds = 30
	cfg.HTTP.UserAgent = "Mozilla/5.0"
	cfg.Output.Path = "output/F1_Jobs.xlsx"
	cfg.Pipeline.OnExtractError = OnExtractErrorIsolate
	cfg.History.Path = "output/f1_jobs.db"
	cfg.Teams = DefaultTeams()
	return cfg
}

func DefaultTeams() []Team {
	return []Team{
		{ID: "Mclaren", URL: "https://racingcareers.mclaren.com/", Profile: "plain_get", Extractor: "mclaren"},
		{ID: "Ferrari", URL: "https://jobs.ferrari.com/search/?createNewAlert=false&q=&optionsFacetsDD_country=&optionsFacetsDD_customfield1=", Profile: "plain_get", Extractor: "ferrari"},
		{ID: "Mercedes", URL: "https://www.mercedesamgf1.com/careers/vacancies", Profile: "plain_get", Extractor: "mercedes"},
		{ID: "Red Bull Racing", URL: "https://www.redbullracing.com/int-en/careers", Profile: "plain_get", Extractor: "red_bull_racing"},
		// bare requests get a 403
		{ID: "Williams", URL: "https://careers.williamsf1.com/jobs", Profile: "get_with_user_agent", Extractor: "williams"},
		{ID: "Aston Martin", URL: "https://www.astonmartinf1.com/en-GB/careers", Profile: "plain_get", Extractor: "aston_martin"},
		// site taken down; the team becomes Audi in 2026
		{ID: "Kick Sauber", URL: "https://www.sauber-group.com/corporate/careers", Profile: "plain_get", Extractor: "kick_sauber", Excluded: true},
		{ID: "Racing Bulls", URL: "https://jobs.redbull.com/api/search?pageSize=10&locale=en&country=int", Profile: "plain_get", Extractor: "racing_bulls"},
		{ID: "Hass", URL: "https://haasf1team.bamboohr.com/careers/list", Profile: "plain_get", Extractor: "hass"},
		{ID: "Alpine", URL: "https://alliancewd.wd3.myworkdayjobs.com/wday/cxs/alliancewd/alpine-racing-careers/jobs", Profile: "post_json", Extractor: "alpine"},
		{ID: "Cadillac", URL: "https://opportunities.cadillacf1team.com/", Profile: "plain_get", Extractor: "cadillac"},
	}
}

// Load overlays the YAML file at path onto Default(). A teams list in the file replaces the roster.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
