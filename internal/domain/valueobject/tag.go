package valueobject

import (
	"regexp"
	"sort"
	"strings"
)

var tagPattern = regexp.MustCompile(`^[a-z0-9-]{1,50}$`)

// NormalizeTag trims and lower-cases tag and reports whether the result is
// a valid tag.
func NormalizeTag(tag string) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(tag))
	return norm, tagPattern.MatchString(norm)
}

// NormalizeTags drops invalid tags and returns the rest lower-cased, sorted
// and deduplicated.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		norm, ok := NormalizeTag(t)
		if !ok {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		result = append(result, norm)
	}
	sort.Strings(result)
	return result
}
