package normalize

import "strings"

// quantityWords is the closed set of spoken quantities the assistant understands.
var quantityWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

// Quantity extracts a spoken quantity word from anywhere in the utterance, scanning
// left to right with the last match winning. When no word matches it falls back to
// the explicit numeric argument, and failing that to 1.
func Quantity(utterance string, explicit int) int {
	qty := 0
	for _, word := range strings.Fields(strings.ToLower(utterance)) {
		word = strings.Trim(word, ".,!?;:")
		if n, ok := quantityWords[word]; ok {
			qty = n
		}
	}
	if qty > 0 {
		return qty
	}
	if explicit > 0 {
		return explicit
	}
	return 1
}
