package scrape

import (
	"testing"

	"f1jobs/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCategoryFirstIsStablePartition(t *testing.T) {
	in := domain.TeamTable{
		TeamID:  "Racing Bulls",
		Headers: []string{"Title", "Category"},
		Rows: []domain.JobRow{
			{"row0", "F1"},
			{"row1", "Academy"},
			{"row2", "F1"},
		},
	}

	got := DefaultPostprocessors().Apply(in)
	require.Equal(t, []domain.JobRow{in.Rows[0], in.Rows[2], in.Rows[1]}, got.Rows)
	require.Equal(t, "row1", in.Rows[1][0], "input must not be reordered")
}

func TestCategoryFirstNoNonF1BeforeF1(t *testing.T) {
	cats := []string{"Academy", "F1", "F2", "F1", "Academy", "F1", "Junior", "F1"}
	in := domain.TeamTable{TeamID: "Racing Bulls", Headers: []string{"Category", "Seq"}}
	for i, c := range cats {
		in.Rows = append(in.Rows, domain.JobRow{c, string(rune('a' + i))})
	}

	got := CategoryFirst("Category", "F1")(in)
	require.Len(t, got.Rows, len(cats))
	for i := 1; i < len(got.Rows); i++ {
		a, b := got.Rows[i-1], got.Rows[i]
		if a[0] != "F1" {
			require.NotEqual(t, "F1", b[0])
		}
		if (a[0] == "F1") == (b[0] == "F1") {
			require.Less(t, a[1], b[1], "order within a partition is preserved")
		}
	}
}

func TestPostprocessDefaultsToIdentity(t *testing.T) {
	in := domain.TeamTable{TeamID: "Ferrari", Headers: []string{"Category"}, Rows: []domain.JobRow{{"Academy"}, {"F1"}}}
	require.Equal(t, in, DefaultPostprocessors().Apply(in))

	var none Postprocessors
	require.Equal(t, in, none.Apply(in))

	noColumn := domain.TeamTable{TeamID: "Racing Bulls", Headers: []string{"Title"}, Rows: []domain.JobRow{{"x"}}}
	require.Equal(t, noColumn, DefaultPostprocessors().Apply(noColumn))
}
