package shared

import (
	"strconv"
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a prefix and its parts into one Redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// Unique trims values and drops blanks and duplicates, keeping first-seen order.
func Unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Eq builds a PostgREST equality filter.
func Eq(value string) string {
	return "eq." + value
}

// In builds a PostgREST membership filter.
func In(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}

	return "in.(" + strings.Join(quoted, ",") + ")"
}
