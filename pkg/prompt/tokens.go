package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	wordPattern = regexp.MustCompile(`\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// EstimateTokens gives a rough token count for prompts and generated markup.
// Prose averages ~4 characters per token; markup is denser at ~3.
func EstimateTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	baseEstimate := len(text) / 4
	wordEstimate := int(float64(len(wordPattern.FindAllString(text, -1))) * 1.3)
	estimate := (baseEstimate + wordEstimate) / 2

	for _, tag := range tagPattern.FindAllString(text, -1) {
		estimate += len(tag)/3 - len(tag)/4
	}

	if estimate < 1 {
		estimate = 1
	}
	return estimate
}

// FormatTokenCount formats the token count for display
func FormatTokenCount(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	} else if tokens < 10000 {
		return fmt.Sprintf("~%.1fK tokens", float64(tokens)/1000)
	}
	return fmt.Sprintf("~%.0fK tokens", float64(tokens)/1000)
}
