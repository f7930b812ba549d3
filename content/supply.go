package content

import (
	"log"
	"sync"

	"github.com/lixenwraith/waterfall/vmath"
)

// Supply feeds characters to the spawner from the active source
// Frame loop, input handler and applied fetch results all run on one goroutine;
// the mutex only protects readers such as the exit summary
type Supply struct {
	mu sync.Mutex

	source  Source
	fetched Fetched
	texts   []string
	cursor  Cursor
	loading map[Source]bool

	// Incremented on every change of the active text set
	generation int64

	rng vmath.Rand
}

// NewSupply creates a supply starting on source with the fallback literary texts
func NewSupply(source Source, rng vmath.Rand) *Supply {
	s := &Supply{
		source:  source,
		fetched: Fetched{Literary: FallbackTexts},
		loading: make(map[Source]bool),
		rng:     rng,
	}
	s.reselect()
	return s
}

// reselect re-derives the active texts and rewinds the cursor; caller holds mu
func (s *Supply) reselect() {
	s.texts = SelectActiveTexts(s.source, s.fetched)
	s.cursor = Cursor{}
	s.generation++
}

// HasText reports whether any characters are available
func (s *Supply) HasText() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.texts {
		if t != "" {
			return true
		}
	}
	return false
}

// Loading reports whether the active source is waiting on a fetch
func (s *Supply) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[s.source]
}

// NextChar returns the next grapheme cluster and advances the cursor
func (s *Supply) NextChar() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ch string
	ch, s.cursor = Advance(s.cursor, s.texts, Loops(s.source), s.rng)
	return ch
}

// Source returns the active source
func (s *Supply) Source() Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Generation changes whenever the active text set is replaced
func (s *Supply) Generation() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// SetSource switches the active source and rewinds the cursor
func (s *Supply) SetSource(src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = src
	s.reselect()
}

// CycleSource advances to the next source and returns it
func (s *Supply) CycleSource() Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = s.source.Next()
	s.reselect()
	return s.source
}

// SetLoading marks a fetch for src as in flight
func (s *Supply) SetLoading(src Source, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading[src] = loading
}

// Apply installs a fetch result; failures keep the current texts
func (s *Supply) Apply(r FetchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading[r.Source] = false

	if r.Err != nil || len(r.Texts) == 0 {
		log.Printf("content: fetch %s for %s kept current texts: %v", r.URL, r.Source, r.Err)
		return
	}

	switch r.Source {
	case SourceLiterary:
		s.fetched.Literary = r.Texts
	case SourceCustom:
		s.fetched.Custom = r.Texts
	default:
		return
	}
	log.Printf("content: loaded %d texts from %s", len(r.Texts), r.URL)

	// Only rewind when the active set actually changed
	if r.Source == s.source || (s.source == SourceCustom && len(s.fetched.Custom) == 0) {
		s.reselect()
	}
}

// ResetCustom drops fetched custom texts and returns to the literary source
func (s *Supply) ResetCustom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetched.Custom = nil
	s.loading[SourceCustom] = false
	s.source = SourceLiterary
	s.reselect()
}

// HasCustom reports whether custom texts have been fetched
func (s *Supply) HasCustom() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fetched.Custom) > 0
}
