package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{in: "  1983 \n", expected: "1983"},
		{in: "January 24,\n\t1984", expected: "January 24, 1984"},
		{in: "Apple\u00a0II", expected: "Apple II"},
		{in: "Lisa\u200b", expected: "Lisa"},
		{in: "", expected: ""},
	}
	for _, test := range cases {
		require.Equal(t, test.expected, CleanText(test.in))
	}
}

func TestFirstAnchor(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<table><tr>
			<td>1984<sup>[3]</sup></td>
			<td><a href="/wiki/Macintosh_128K">Macintosh <b>128K</b></a></td>
			<td><a href="/wiki/Other">Other</a></td>
		</tr></table>`))
	require.NoError(t, err)

	row := doc.Find("tr")
	anchor, ok := FirstAnchor(context.Background(), row)
	require.True(t, ok)
	require.Equal(t, "Macintosh 128K", anchor.Name)
	require.Equal(t, "/wiki/Macintosh_128K", anchor.Href)

	require.Equal(t, "1984", SelectionText(row.Find("td").First()))

	_, ok = FirstAnchor(context.Background(), row.Find("td").First())
	require.False(t, ok)
}
