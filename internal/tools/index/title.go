package index

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// String transformations
const (
	dashChar  = "-"
	spaceChar = " "
)

// Title converts a raw directory name into its display title: the name
// is split on every hyphen, each segment is title-cased, and the
// segments are rejoined with single spaces.
//
// Empty segments produced by adjacent, leading, or trailing hyphens are
// preserved positionally, so "a--b" renders as "A  B" with a double
// space. That matches the rendering the generated READMEs have always
// had.
func Title(name string) string {
	caser := cases.Title(language.English)

	segments := strings.Split(name, dashChar)
	for i, segment := range segments {
		segments[i] = caser.String(segment)
	}

	return strings.Join(segments, spaceChar)
}
