package facdir

import (
	"regexp"
	"strings"
)

var (
	caseBoundaryRe = regexp.MustCompile(`([a-z])([A-Z])`)
	initialRe      = regexp.MustCompile(`\.([A-Z])`)
	spaceRe        = regexp.MustCompile(`\s+`)
)

// NormalizeName repairs names whose parts were concatenated by the source
// markup, e.g. "JosephMakin" → "Joseph Makin" and "M.Lukens" → "M. Lukens".
//
// The split is a heuristic: surnames with inner capitals such as "McDonald"
// are split as well.
func NormalizeName(raw string) string {
	name := caseBoundaryRe.ReplaceAllString(raw, "$1 $2")
	name = initialRe.ReplaceAllString(name, ". $1")
	name = spaceRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
