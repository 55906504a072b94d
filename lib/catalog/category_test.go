package catalog

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupColor(t *testing.T) {
	cases := []struct {
		token    string
		expected Category
	}{
		{token: "#FFFF79", expected: CATEGORY_APPLE_I_II_III},
		{token: "FFFF79", expected: CATEGORY_APPLE_I_II_III},
		{token: "ffff79", expected: CATEGORY_APPLE_I_II_III},
		{token: "#81D666", expected: CATEGORY_LISA},
		{token: "81d666 ", expected: CATEGORY_LISA},
		{token: "#95CEFE", expected: CATEGORY_MACINTOSH},
		{token: "8BFFA3", expected: CATEGORY_NETWORK_SERVER},
		{token: "#CCFF99", expected: CATEGORY_PHONES_TABLETS_PDAS},
		{token: "#CF9", expected: CATEGORY_PHONES_TABLETS_PDAS},
		{token: "#cf9", expected: CATEGORY_PHONES_TABLETS_PDAS},
		{token: "FFE5E5", expected: CATEGORY_IPOD_CONSUMER},
		{token: "#D8D8F2", expected: CATEGORY_COMPUTER_PERIPHERALS},
		{token: "#000000", expected: Unknown},
		{token: "", expected: Unknown},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, LookupColor(test.token), "token %q", test.token)
	}
}

func TestEveryColorIsMarkerAndCaseInsensitive(t *testing.T) {
	for token, expected := range colors {
		for _, variant := range []string{
			token,
			"#" + token,
			"#" + strings.ToLower(token),
			strings.ToLower(token),
		} {
			require.Equal(t, expected, LookupColor(variant), "variant %q", variant)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	parsed, err := ParseCategory("N/A")
	require.NoError(t, err)
	require.Equal(t, Unknown, parsed)

	_, err = ParseCategory("Newton")
	require.True(t, errors.Is(err, ErrUnknownLabel))
}

func TestCategoriesAreKnownAndOrdered(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 7)
	for i, c := range cats {
		require.Equal(t, Category(i), c)
		require.True(t, c.Known())
	}
	require.False(t, Unknown.Known())
	require.Equal(t, "N/A", Category(42).String())
}

func TestCategoryJSON(t *testing.T) {
	out, err := json.Marshal(Record{ReleaseDate: "1983", Category: CATEGORY_LISA})
	require.NoError(t, err)
	require.JSONEq(t, `{"release date": "1983", "category": "Lisa"}`, string(out))

	var rec Record
	err = json.Unmarshal([]byte(`{"release date": "1998", "category": "Newton"}`), &rec)
	require.NoError(t, err)
	require.Equal(t, Unknown, rec.Category)
}
