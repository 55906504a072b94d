package productsearch

import (
	"sort"

	"apptendo/lib/catalog"
	"apptendo/lib/textutil"

	"github.com/antzucaro/matchr"
)

type Match struct {
	catalog.NamedRecord
	// 1 is an exact match after normalization
	Similarity float64
}

// Rank orders records by how closely their names resemble query, using
// Jaro-Winkler similarity on normalized names. A name that contains the
// query outright is ranked as if it matched exactly. At most limit
// matches with non-zero similarity are returned, limit <= 0 means all.
func Rank(query string, records []catalog.NamedRecord, limit int) []Match {
	normalizedQuery := textutil.NormalizeName(query)
	if normalizedQuery == "" {
		return nil
	}

	var matches []Match
	for _, r := range records {
		name := textutil.NormalizeName(r.Name)
		similarity := matchr.JaroWinkler(normalizedQuery, name, false)
		if textutil.MatchName(r.Name, []string{query}) && similarity < 1 {
			similarity = 1 - 0.01*float64(len(name)-len(normalizedQuery))/float64(len(name))
		}
		if similarity <= 0 {
			continue
		}
		matches = append(matches, Match{NamedRecord: r, Similarity: similarity})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Name < matches[j].Name
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
