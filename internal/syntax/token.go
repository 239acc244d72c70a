// Package syntax provides the single-pass lexical classifier used for
// syntax coloring. The whole document is re-scanned on every text change;
// documents above MaxParseChars are short-circuited to one Unknown span
// per line to cap worst-case latency.
package syntax

// SyntaxType represents the semantic class of a span.
type SyntaxType uint8

// Span classes emitted by the parser.
const (
	// Unknown is the fallback class, covering identifiers, numbers and
	// whitespace runs that match no other rule.
	Unknown SyntaxType = iota

	// Keyword covers the fixed keyword list.
	Keyword

	// SpecialKeyword covers the special keyword list and all-uppercase
	// identifiers (constants).
	SpecialKeyword

	// String covers quoted text including both quote characters.
	String

	// Punctuation covers single operator-like characters.
	Punctuation

	// Punctuation2 covers bracket characters, kept separate from
	// Punctuation so brackets can be styled differently from operators.
	Punctuation2

	// Property covers an identifier that follows a '.'.
	Property

	// Comment covers line and block comments.
	Comment

	syntaxTypeCount
)

// String returns the string representation of a syntax type.
func (t SyntaxType) String() string {
	if int(t) < len(syntaxTypeNames) {
		return syntaxTypeNames[t]
	}
	return "unknown"
}

var syntaxTypeNames = []string{
	Unknown:        "unknown",
	Keyword:        "keyword",
	SpecialKeyword: "special-keyword",
	String:         "string",
	Punctuation:    "punctuation",
	Punctuation2:   "punctuation.bracket",
	Property:       "property",
	Comment:        "comment",
}

// Span is a classified run of characters on a single line.
// Columns are char indices within the line, the line break excluded.
type Span struct {
	// Type is the semantic class of the span.
	Type SyntaxType

	// StartCol is the starting column (0-indexed, inclusive).
	StartCol int

	// EndCol is the ending column (exclusive).
	EndCol int
}

// Len returns the length of the span in chars.
func (s Span) Len() int {
	return s.EndCol - s.StartCol
}

// Contains returns true if the column falls within the span.
func (s Span) Contains(col int) bool {
	return col >= s.StartCol && col < s.EndCol
}

// SyntaxLine holds the ordered spans of one line. The spans cover the
// entire line content with no gaps; an empty line has no spans.
type SyntaxLine []Span

// SpanAt returns the span at the given column, if any.
func (l SyntaxLine) SpanAt(col int) (Span, bool) {
	for _, s := range l {
		if s.Contains(col) {
			return s, true
		}
		if s.StartCol > col {
			break
		}
	}
	return Span{}, false
}

// SyntaxBlocks holds one SyntaxLine per document line. Parsing always
// emits exactly as many lines as the buffer reports, including the
// trailing empty line after a final line break.
type SyntaxBlocks []SyntaxLine
