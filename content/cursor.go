package content

import (
	"github.com/lixenwraith/waterfall/vmath"
	"github.com/rivo/uniseg"
)

// Cursor is the read position inside the current excerpt
// Offset is a byte offset that always sits on a grapheme cluster boundary
type Cursor struct {
	Text   string
	Offset int
}

// Exhausted reports whether every cluster of the excerpt has been read
func (c Cursor) Exhausted() bool {
	return c.Offset >= len(c.Text)
}

// Advance returns the next grapheme cluster and the moved cursor
// An exhausted cursor restarts its excerpt when loop is set, otherwise it jumps to a random text
// Returns "" when texts is empty and the cursor holds nothing
func Advance(cur Cursor, texts []string, loop bool, rng vmath.Rand) (string, Cursor) {
	if cur.Text == "" {
		if len(texts) == 0 {
			return "", cur
		}
		cur = Cursor{Text: texts[0]}
	}

	if cur.Exhausted() {
		if loop || len(texts) == 0 {
			cur.Offset = 0
		} else {
			idx := int(rng.Float64() * float64(len(texts)))
			if idx >= len(texts) {
				idx = len(texts) - 1
			}
			cur = Cursor{Text: texts[idx]}
		}
		if cur.Text == "" {
			return "", cur
		}
	}

	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(cur.Text[cur.Offset:], -1)
	cur.Offset += len(cluster)
	return cluster, cur
}
