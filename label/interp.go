package label

import (
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Expand replaces ${field} placeholders in text with values from the
// record. Supported fields: category, short, year, format. Unknown
// placeholders are left untouched so a typo stays visible on the sheet.
func (r Record) Expand(text string) string {
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		switch strings.ToLower(strings.TrimSpace(groups[1])) {
		case "category":
			return r.Category
		case "short":
			return r.ShortCode
		case "year":
			return strconv.Itoa(r.StartYear)
		case "format":
			return r.Format
		default:
			return match
		}
	})
}
