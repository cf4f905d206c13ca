package market

// Error messages
const (
	ErrMsgReadCatalogue  = "failed to read market catalogue"
	ErrMsgParseCatalogue = "failed to parse market catalogue"
)

// Log messages
const (
	LogMsgFuzzyFallback = "No exact market match, using fuzzy search"
)

const (
	// MaxFuzzyDistance is the largest edit distance accepted by the fuzzy fallback
	MaxFuzzyDistance = 2

	// MinFuzzyLength is the shortest search term the fuzzy fallback considers
	MinFuzzyLength = 3
)
