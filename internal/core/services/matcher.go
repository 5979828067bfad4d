package services

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// Lines yields every line of contents paired with its 1-based number.
//
// Lines end at "\n". A "\r" directly before the "\n" belongs to the
// terminator, not the content. A terminator at the very end of contents
// does not start another line, so "a\n" and "a" both yield one line.
func Lines(contents string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		number := 0
		for contents != "" {
			line, rest, found := strings.Cut(contents, "\n")
			if found {
				line = strings.TrimSuffix(line, "\r")
			}
			number++
			if !yield(number, line) {
				return
			}
			contents = rest
		}
	}
}

// Search returns the lines of contents that contain query, in file order.
// When caseSensitive is false the query is folded once and each line is
// folded once before comparison; MatchedLine.Content keeps the original text.
// The result is never nil.
func Search(query string, caseSensitive bool, contents string) []domain.MatchedLine {
	matches := []domain.MatchedLine{}

	contains := func(line string) bool {
		return strings.Contains(line, query)
	}
	if !caseSensitive {
		fold := cases.Fold()
		folded := fold.String(query)
		contains = func(line string) bool {
			return strings.Contains(fold.String(line), folded)
		}
	}

	for number, line := range Lines(contents) {
		if contains(line) {
			matches = append(matches, domain.MatchedLine{Number: number, Content: line})
		}
	}
	return matches
}
