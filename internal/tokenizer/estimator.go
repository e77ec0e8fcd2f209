// Package tokenizer approximates how many model tokens a text will consume.
package tokenizer

import "strings"

// tokensPerWord deliberately over-counts so large inputs are routed to the
// model with the bigger context window.
const tokensPerWord = 2

// Estimate returns twice the number of ASCII-whitespace separated words in text.
func Estimate(text string) int {
	return CountWords(text) * tokensPerWord
}

// CountWords counts words separated by space, tab, newline, form feed or
// carriage return. Other Unicode spaces do not separate words.
func CountWords(text string) int {
	return len(strings.FieldsFunc(text, isASCIISpace))
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
