package manager

import (
	"strings"

	"widget/wmo"
)

const (
	summaryConnector = " then "
	summaryTrailer   = "expected throughout the day."
	summaryMaxItems  = 2
)

// Summarize describes the first window hourly codes as one sentence naming
// at most two distinct conditions in order of first appearance.
func Summarize(codes []wmo.Code, window int) string {
	if window < 0 {
		window = 0
	}
	if len(codes) > window {
		codes = codes[:window]
	}

	seen := make(map[string]struct{}, summaryMaxItems)
	descriptions := make([]string, 0, summaryMaxItems)
	for _, code := range codes {
		description := wmo.Description(code)
		if _, ok := seen[description]; ok {
			continue
		}
		seen[description] = struct{}{}
		descriptions = append(descriptions, description)
		if len(descriptions) == summaryMaxItems {
			break
		}
	}

	if len(descriptions) == 0 {
		return wmo.UnknownDescription + " " + summaryTrailer
	}

	return strings.Join(descriptions, summaryConnector) + " " + summaryTrailer
}
