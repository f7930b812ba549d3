package content

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc
}

func TestExtractMainContent(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		want     string
		excluded string
	}{
		{
			name:     "main preferred over body",
			html:     `<html><body><nav>menu</nav><main>story<script>var x</script></main></body></html>`,
			want:     "story",
			excluded: "menu",
		},
		{
			name:     "class selector",
			html:     `<html><body><div>side</div><div class="entry-content">entry</div></body></html>`,
			want:     "entry",
			excluded: "side",
		},
		{
			name:     "body fallback strips style",
			html:     `<html><head><style>p{}</style></head><body><p>plain</p><noscript>nojs</noscript></body></html>`,
			want:     "plain",
			excluded: "nojs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMainContent(mustDoc(t, tt.html))
			if !strings.Contains(got, tt.want) {
				t.Errorf("Expected %q in %q", tt.want, got)
			}
			if strings.Contains(got, tt.excluded) {
				t.Errorf("Unexpected %q in %q", tt.excluded, got)
			}
		})
	}
}

func TestExtractLiterary(t *testing.T) {
	doc := mustDoc(t, `<html><body><div class="main_text">私は、
	その男の　写真を<br/>見た</div></body></html>`)
	if got := ExtractLiterary(doc); got != "私は、その男の写真を見た" {
		t.Errorf("Unexpected literary text %q", got)
	}
}

func TestCleanText(t *testing.T) {
	if got := CleanText("  a \n\n b\t c  "); got != "a b c" {
		t.Errorf("Expected \"a b c\", got %q", got)
	}
	// NFC composes e + combining acute
	if got := CleanText("e\u0301"); got != "\u00e9" {
		t.Errorf("Expected composed form, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("あいうえお", 3); got != "あいう..." {
		t.Errorf("Expected rune-based truncation, got %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Expected unchanged text, got %q", got)
	}
}

func TestChunkText(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{"split at limit", "一文目。二文目。三文目", 3, []string{"一文目", "二文目", "三文目"}},
		{"packed", "一文目。二文目！", 100, []string{"一文目二文目"}},
		{"latin", "One. Two? Three!", 5, []string{"One", "Two", "Three"}},
		{"empty", "。。", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChunkText(tt.text, tt.max)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Chunk %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}
