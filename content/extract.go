package content

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// contentSelectors are tried in order before falling back to the page body
var contentSelectors = []string{
	"main",
	"article",
	".content",
	".main-content",
	"#content",
	"#main",
	".post-content",
	".entry-content",
}

// sentenceTerminators split extracted text into sentences
const sentenceTerminators = "。！？.!?"

// ExtractMainContent returns the text of the page's main content area
// Script, style and noscript elements are removed from doc
func ExtractMainContent(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	for _, sel := range contentSelectors {
		found := doc.Find(sel).First()
		if found.Length() == 0 {
			continue
		}
		if text := found.Text(); text != "" {
			return text
		}
		break
	}

	if body := doc.Find("body"); body.Length() > 0 {
		return body.Text()
	}
	return doc.Text()
}

// ExtractLiterary returns the archive's .main_text content with all whitespace removed
func ExtractLiterary(doc *goquery.Document) string {
	return StripWhitespace(doc.Find(".main_text").Text())
}

// CleanText normalizes to NFC and collapses whitespace runs into single spaces
func CleanText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// StripWhitespace removes every whitespace rune, including ideographic spaces
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, norm.NFC.String(s))
}

// Truncate cuts s to at most max runes, marking the cut with an ellipsis
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i] + "..."
		}
		n++
	}
	return s
}

// ChunkText packs sentences into chunks of at most maxLength runes
// Terminators are consumed by the split; a single sentence longer than maxLength stays whole
func ChunkText(text string, maxLength int) []string {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(sentenceTerminators, r)
	})

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if c := strings.TrimSpace(current.String()); c != "" {
			chunks = append(chunks, c)
		}
		current.Reset()
		currentLen = 0
	}

	for _, sentence := range sentences {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		n := utf8.RuneCountInString(sentence)
		if currentLen+n > maxLength {
			flush()
		}
		current.WriteString(sentence)
		currentLen += n
	}
	flush()

	return chunks
}
