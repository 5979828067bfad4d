package services

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// maxAlignedDigits is the widest line number the gutter keeps aligned.
const maxAlignedDigits = 3

// DigitCount returns the number of decimal digits in a positive number.
func DigitCount(number int) int {
	digits := 1
	for number >= 10 {
		number /= 10
		digits++
	}
	return digits
}

// Separator returns the text placed between a line number and the line
// content. Numbers of up to three digits share one divider column; wider
// numbers get the minimal "| " and push the divider right.
func Separator(number int) string {
	switch DigitCount(number) {
	case 1:
		return "   | "
	case 2:
		return "  | "
	case 3:
		return " | "
	default:
		return "| "
	}
}

// RenderedLen returns the exact length Render produces for matches.
func RenderedLen(matches []domain.MatchedLine, showLineNumbers bool) int {
	n := 0
	for i := range matches {
		if showLineNumbers {
			n += DigitCount(matches[i].Number) + len(Separator(matches[i].Number))
		}
		n += len(matches[i].Content) + 1
	}
	return n
}

// Render formats matches as output text, one line each, optionally
// prefixed with the line-number gutter.
//
// Line numbers wider than three digits are not an error: a notice is
// logged and the line is written with the minimal separator.
func Render(matches []domain.MatchedLine, showLineNumbers bool) string {
	var b strings.Builder
	b.Grow(RenderedLen(matches, showLineNumbers))

	for i := range matches {
		if showLineNumbers {
			number := matches[i].Number
			if DigitCount(number) > maxAlignedDigits {
				logger.Notice("line number %d: unable to align any more line numbers", number)
			}
			b.WriteString(strconv.Itoa(number))
			b.WriteString(Separator(number))
		}
		b.WriteString(matches[i].Content)
		b.WriteByte('\n')
	}

	return b.String()
}
