package extract

import (
	"fmt"
	"strings"

	"f1jobs/internal/domain"
	"f1jobs/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// field is one column of a card layout. An empty sel reads the card itself.
type field struct {
	header string
	sel    string
	attr   string // "" reads text; "href" is resolved against the layout base
}

// cardLayout describes a listing page where every posting is one repeated element.
type cardLayout struct {
	name   string
	base   string
	item   string
	fields []field
}

// locationHeader gets util.FindLocation as a fallback when its selector finds nothing.
const locationHeader = "Location"

func (c cardLayout) headers() []string {
	out := make([]string, len(c.fields))
	for i, f := range c.fields {
		out[i] = f.header
	}
	return out
}

func (c cardLayout) Extract(raw string) ([]string, []domain.JobRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("%s parse html: %w", c.name, err)
	}

	seen := map[string]bool{}
	var rows []domain.JobRow
	doc.Find(c.item).Each(func(_ int, card *goquery.Selection) {
		row := make(domain.JobRow, len(c.fields))
		for i, f := range c.fields {
			row[i] = c.value(card, f)
		}

		// first column is the title
		if row[0] == "" || util.LooksLikeJunkTitle(row[0]) {
			return
		}
		key := strings.Join(row, "\x00")
		if seen[key] {
			return
		}
		seen[key] = true
		rows = append(rows, row)
	})

	return c.headers(), rows, nil
}

func (c cardLayout) value(card *goquery.Selection, f field) string {
	sel := card
	if f.sel != "" {
		sel = card.Find(f.sel).First()
	}

	var v string
	switch f.attr {
	case "":
		v = util.CleanText(sel.Text())
	case "href":
		href, _ := sel.Attr("href")
		v = util.ResolveURL(c.base, href)
	default:
		a, _ := sel.Attr(f.attr)
		v = util.CleanText(a)
	}

	if f.header == locationHeader {
		v = util.NormalizeLocation(v)
		if v == "" {
			v = util.FindLocation(card)
		}
	}
	return v
}
