package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Category is the product line a timeline row belongs to. The wiki marks
// it only through the row's background color.
type Category int64

const (
	CATEGORY_APPLE_I_II_III Category = iota
	CATEGORY_LISA
	CATEGORY_MACINTOSH
	CATEGORY_NETWORK_SERVER
	CATEGORY_PHONES_TABLETS_PDAS
	CATEGORY_IPOD_CONSUMER
	CATEGORY_COMPUTER_PERIPHERALS

	// Unknown is given to rows whose color is not in the table. It has no
	// row in the categories table.
	Unknown Category = -1
)

var ErrUnknownLabel = errors.New("unknown category label")

var labels = map[Category]string{
	CATEGORY_APPLE_I_II_III:       "Apple 1/2/2GS/3",
	CATEGORY_LISA:                 "Lisa",
	CATEGORY_MACINTOSH:            "Macintosh",
	CATEGORY_NETWORK_SERVER:       "Network Server",
	CATEGORY_PHONES_TABLETS_PDAS:  "Phones/Tablets/PDAs",
	CATEGORY_IPOD_CONSUMER:        "iPod/Consumer Products",
	CATEGORY_COMPUTER_PERIPHERALS: "Computer Peripherals",
	Unknown:                       "N/A",
}

// keys are uppercase and have no leading '#'
var colors = map[string]Category{
	"FFFF79": CATEGORY_APPLE_I_II_III,
	"81D666": CATEGORY_LISA,
	"95CEFE": CATEGORY_MACINTOSH,
	"8BFFA3": CATEGORY_NETWORK_SERVER,
	"CCFF99": CATEGORY_PHONES_TABLETS_PDAS,
	"CF9":    CATEGORY_PHONES_TABLETS_PDAS,
	"FFE5E5": CATEGORY_IPOD_CONSUMER,
	"D8D8F2": CATEGORY_COMPUTER_PERIPHERALS,
}

// Categories returns the known categories in id order, Unknown excluded.
func Categories() []Category {
	return []Category{
		CATEGORY_APPLE_I_II_III,
		CATEGORY_LISA,
		CATEGORY_MACINTOSH,
		CATEGORY_NETWORK_SERVER,
		CATEGORY_PHONES_TABLETS_PDAS,
		CATEGORY_IPOD_CONSUMER,
		CATEGORY_COMPUTER_PERIPHERALS,
	}
}

func (c Category) String() string {
	label, ok := labels[c]
	if !ok {
		return labels[Unknown]
	}
	return label
}

func (c Category) Known() bool {
	_, ok := labels[c]
	return ok && c != Unknown
}

func normalizeColor(token string) string {
	token = strings.TrimSpace(token)
	token = strings.TrimPrefix(token, "#")
	return strings.ToUpper(token)
}

// LookupColor maps a bgcolor attribute value to its category. Matching
// ignores case, surrounding whitespace and a leading '#'.
func LookupColor(token string) Category {
	c, ok := colors[normalizeColor(token)]
	if !ok {
		return Unknown
	}
	return c
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(label string) (Category, error) {
	for c, l := range labels {
		if l == label {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// unrecognized labels decode to Unknown so that a stale cache still
// loads, the mirror rejects them later.
func (c *Category) UnmarshalJSON(data []byte) error {
	var label string
	err := json.Unmarshal(data, &label)
	if err != nil {
		return err
	}
	parsed, err := ParseCategory(label)
	if err != nil {
		*c = Unknown
		return nil
	}
	*c = parsed
	return nil
}
