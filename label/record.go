// Package label defines the binder label record shared by the store,
// the layout engine and the renderers.
package label

import "strings"

// Record describes one binder spine label. Records are immutable once
// handed to the layout engine; ownership stays with the caller.
type Record struct {
	Category      string
	ShortCode     string
	StartYear     int
	Subcategories []string
	Format        string
}

// SplitSubcategories parses the flat-file representation of a subcategory
// list. Both ";" and "," act as separators; surrounding whitespace and
// empty entries are dropped.
func SplitSubcategories(s string) []string {
	s = strings.ReplaceAll(s, ",", ";")
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinSubcategories is the inverse of SplitSubcategories.
func JoinSubcategories(subs []string) string {
	return strings.Join(subs, ";")
}
