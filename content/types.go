package content

// Source identifies where spawned characters come from
type Source string

const (
	SourceLiterary Source = "literary"
	SourceSutra    Source = "sutra"
	SourceCustom   Source = "custom"
)

// Sources lists the selectable sources in cycling order
var Sources = []Source{SourceLiterary, SourceSutra, SourceCustom}

// ParseSource maps a persisted or flag value to a Source
func ParseSource(s string) (Source, bool) {
	for _, src := range Sources {
		if string(src) == s {
			return src, true
		}
	}
	return SourceLiterary, false
}

// Next returns the source following s in cycling order
func (s Source) Next() Source {
	for i, src := range Sources {
		if src == s {
			return Sources[(i+1)%len(Sources)]
		}
	}
	return SourceLiterary
}

// Label is the HUD name of the source
func (s Source) Label() string {
	switch s {
	case SourceSutra:
		return "般若心経"
	case SourceCustom:
		return "custom"
	default:
		return "太宰治"
	}
}

// Fetched holds the text sets obtained from the network
type Fetched struct {
	Literary []string
	Custom   []string
}

// FetchResult is handed from a fetch goroutine back to the frame loop
type FetchResult struct {
	Source Source
	URL    string
	Texts  []string
	Err    error
}
