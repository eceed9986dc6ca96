package portfolio

import (
	"strings"

	"github.com/chefolio/chefolio/sharedutil"
	"github.com/deluan/sanitize"
)

// NormalizeTag folds case and accents so "Entrée" and "entree" compare equal.
func NormalizeTag(tag string) string {
	return strings.ToLower(sanitize.Accents(strings.TrimSpace(tag)))
}

// DedupeTags drops blank tags and later duplicates of an earlier tag,
// keeping the spelling of the first occurrence.
func DedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	return sharedutil.FilterMapSlice(tags, func(t string) (string, bool) {
		key := NormalizeTag(t)
		if key == "" {
			return "", false
		}
		if _, ok := seen[key]; ok {
			return "", false
		}
		seen[key] = struct{}{}
		return strings.TrimSpace(t), true
	})
}
