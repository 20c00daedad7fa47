package product

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var (
	brPattern    = regexp.MustCompile(`(?i)<br\s*/?>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// DescriptionPreview reduces a marked-up product description to a plain-text
// snippet for list views: only the text before the first <br>, tags
// stripped, whitespace collapsed, truncated to maxLen runes with an
// ellipsis.
func DescriptionPreview(html string, maxLen int) string {
	if html == "" {
		return ""
	}

	first := brPattern.Split(html, 2)[0]

	text := first
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(first)); err == nil {
		text = doc.Text()
	}

	// Entity decoding turns &nbsp; into U+00A0, which \s does not match
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))

	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}
