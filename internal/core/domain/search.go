package domain

// EnvCaseSensitive is the environment variable whose presence enables
// case-sensitive matching. Its value is never inspected.
const EnvCaseSensitive = "CASE_SENSITIVE"

// LineNumbersToken is the third positional argument that enables the
// line-number gutter.
const LineNumbersToken = "ln"

// MatchedLine is a single line of input that contains the query.
type MatchedLine struct {
	// Number is the 1-based position of the line in the file.
	Number int

	// Content is the line text without its terminator, in original case.
	Content string
}

// SearchConfig is the compiled input to the matcher and renderer.
// It is built once per invocation by the CLI and never mutated afterwards.
type SearchConfig struct {
	// Query is the substring to look for. An empty query matches every line.
	Query string

	// CaseSensitive disables case folding when true.
	CaseSensitive bool

	// ShowLineNumbers prefixes each rendered line with a number gutter.
	ShowLineNumbers bool
}
