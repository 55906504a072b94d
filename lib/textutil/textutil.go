package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var punctuationRegex = regexp.MustCompile(`[^\p{L}\p{N}]`)

// NormalizeName reduces a product name to lowercase letters and digits so
// that "iPod mini", "IPOD-Mini" and "ipodmini" compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	name = punctuationRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, NormalizeName(m)) {
			return true
		}
	}
	return false
}
