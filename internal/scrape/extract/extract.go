// Package extract holds the per-site parsers that turn a fetched career page into headers and rows.
package extract

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"f1jobs/internal/domain"
)

var ErrUnknownExtractor = errors.New("unknown extractor")

var registry = map[string]domain.Extractor{
	"mclaren":         mclaren.Extract,
	"ferrari":         ferrari.Extract,
	"mercedes":        mercedes.Extract,
	"red_bull_racing": redBullRacing.Extract,
	"williams":        williams.Extract,
	"aston_martin":    astonMartin.Extract,
	"kick_sauber":     kickSauber.Extract,
	"racing_bulls":    RacingBulls,
	"hass":            Haas,
	"alpine":          Alpine,
	"cadillac":        cadillac.Extract,
}

// Lookup resolves an extractor key as used in the team roster.
func Lookup(key string) (domain.Extractor, error) {
	fn, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtractor, key)
	}
	return fn, nil
}

func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
