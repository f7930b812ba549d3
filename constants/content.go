package constants

import "time"

// Content Fetching Constants
const (
	// MaxTextLength truncates extracted page text
	MaxTextLength = 50000

	// MinExtractedLength is the minimum raw text length accepted from a custom URL
	MinExtractedLength = 50

	// MinLiteraryLength is the minimum literary text length accepted from the archive
	MinLiteraryLength = 100

	// ChunkMaxLength is the maximum length of one sentence chunk
	ChunkMaxLength = 1000

	// FetchTimeout bounds one HTTP attempt
	FetchTimeout = 15 * time.Second

	// FetchRetries is the number of attempts before falling back
	FetchRetries = 3

	// FetchBackoff is the initial delay between attempts, doubled each retry
	FetchBackoff = 500 * time.Millisecond

	// FetchResultBuffer is the capacity of the fetch result channel
	FetchResultBuffer = 4
)
