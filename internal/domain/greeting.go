package domain

import (
	"strconv"
	"strings"
)

// DefaultCategory labels a greeting set whose response carried no category.
const DefaultCategory = "The 2026 Collective"

// cardKeyPrefixLen is how many characters of the greeting text go into a card key.
const cardKeyPrefixLen = 15

// GreetingItem is a single generated greeting. Read-only once produced.
type GreetingItem struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

// GreetingResponse is the structured payload of the text service.
type GreetingResponse struct {
	Category  string         `json:"category"`
	Greetings []GreetingItem `json:"greetings"`
}

// CleanText strips markdown emphasis and heading markers from a greeting.
func CleanText(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '#' || r == '*' {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(cleaned)
}

// CardKey derives a card identity from its greeting text and position.
func CardKey(text string, index int) string {
	runes := []rune(text)
	if len(runes) > cardKeyPrefixLen {
		runes = runes[:cardKeyPrefixLen]
	}
	return string(runes) + "-" + strconv.Itoa(index)
}
