package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func LooksLikeJunkTitle(t string) bool {
	l := strings.ToLower(t)
	return l == "view" || l == "apply" || strings.HasPrefix(l, "view all") || strings.HasPrefix(l, "apply now")
}

// FindLocation looks for a location inside one job card when the site-specific selector came up empty.
func FindLocation(card *goquery.Selection) string {
	candidates := []string{
		".location",
		".job-location",
		".job__location",
		"[data-testid='job-location']",
		"[data-testid='location']",
		"[itemprop='jobLocation']",
	}

	for _, sel := range candidates {
		if t := CleanText(card.Find(sel).First().Text()); t != "" {
			return NormalizeLocation(t)
		}
	}

	if loc := ExtractLocationFromLabeledText(CleanText(card.Text())); loc != "" {
		return NormalizeLocation(loc)
	}
	return ""
}

// extracts after "Location" patterns in plain text
func ExtractLocationFromLabeledText(s string) string {
	low := strings.ToLower(s)

	labels := []string{
		"job location:",
		"locations:",
		"location:",
	}

	for _, lab := range labels {
		if i := strings.Index(low, lab); i >= 0 {
			start := i + len(lab)
			rest := strings.TrimSpace(s[start:])

			for _, cut := range []string{"\n", "\r", " | ", " · "} {
				if j := strings.Index(rest, cut); j >= 0 {
					rest = rest[:j]
				}
			}

			rest = CleanText(rest)
			if rest != "" && len(rest) <= 80 {
				return rest
			}
		}
	}
	return ""
}
