package syntax

import (
	"strings"
	"unicode"

	"github.com/verso-editor/verso/internal/engine/buffer"
)

// MaxParseChars is the document size at which full classification is
// skipped. At or above this size every line becomes a single Unknown span.
const MaxParseChars = 1_000_000

var genericKeywords = newWordSet(
	"use", "impl", "if", "let", "fn", "struct", "enum", "const", "pub",
	"crate", "else", "mut", "for", "i8", "u8", "i16", "u16", "i32", "u32",
	"f32", "i64", "u64", "f64", "i128", "u128", "usize", "isize", "move",
	"async", "in", "of", "dyn", "type",
)

var specialKeywords = newWordSet("self", "Self", "false", "true")

// Operator-like characters become Punctuation spans; brackets become
// Punctuation2 so they can be styled separately.
const (
	operatorChars = ".=;',#&-+^\\"
	bracketChars  = "{}()><]["
)

func newWordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

type commentTracking uint8

const (
	commentNone commentTracking = iota
	commentLine
	commentBlock
)

// parser carries the scan state across characters and lines.
type parser struct {
	blocks SyntaxBlocks
	line   SyntaxLine
	col    int

	// word accumulates either a run of non-whitespace or a run of
	// whitespace, never a mix.
	word      []rune
	wordStart int

	inString    bool
	stringStart int

	comment      commentTracking
	commentStart int
	prevComment  rune

	// property marks that the next flushed word follows a '.'.
	property bool
}

// Parse scans the whole buffer and returns one SyntaxLine per document
// line. It never fails; unclassified characters fall back to Unknown.
func Parse(b *buffer.Buffer) SyntaxBlocks {
	if b.LenChars() >= MaxParseChars {
		return parsePlain(b)
	}

	p := &parser{blocks: make(SyntaxBlocks, 0, b.LineCount())}
	for _, ch := range b.Text() {
		if ch == '\n' {
			p.endLine()
			continue
		}
		p.scan(ch)
		p.col++
	}
	p.endLine()
	return p.blocks
}

// parsePlain is the large-file fallback: one full-width Unknown span per
// line, regardless of content.
func parsePlain(b *buffer.Buffer) SyntaxBlocks {
	blocks := make(SyntaxBlocks, b.LineCount())
	for i := range blocks {
		blocks[i] = SyntaxLine{{Type: Unknown, StartCol: 0, EndCol: b.LineLenChars(i)}}
	}
	return blocks
}

func (p *parser) scan(ch rune) {
	if !unicode.IsSpace(ch) {
		p.flushSpaces()
	}

	switch {
	case p.inString && ch == '"':
		p.line = append(p.line, Span{Type: String, StartCol: p.stringStart, EndCol: p.col + 1})
		p.inString = false

	case p.comment == commentNone && ch == '"':
		p.flushWord()
		p.inString = true
		p.stringStart = p.col

	case p.comment != commentNone:
		if p.comment == commentBlock && ch == '/' && p.prevComment == '*' {
			p.line = append(p.line, Span{Type: Comment, StartCol: p.commentStart, EndCol: p.col + 1})
			p.comment = commentNone
		}
		p.prevComment = ch

	case p.inString:
		// String content; the span is emitted at the closing quote.

	case strings.ContainsRune(operatorChars, ch):
		p.flushWord()
		if ch == '.' {
			p.property = true
		}
		p.line = append(p.line, Span{Type: Punctuation, StartCol: p.col, EndCol: p.col + 1})

	case strings.ContainsRune(bracketChars, ch):
		p.flushWord()
		p.line = append(p.line, Span{Type: Punctuation2, StartCol: p.col, EndCol: p.col + 1})

	default:
		// A '/' or '*' after a lone '/' retroactively starts a comment.
		if (ch == '/' || ch == '*') && len(p.word) == 1 && p.word[0] == '/' {
			p.commentStart = p.wordStart
			p.word = p.word[:0]
			if ch == '*' {
				p.comment = commentBlock
			} else {
				p.comment = commentLine
			}
			p.prevComment = ch
			return
		}
		if unicode.IsSpace(ch) {
			p.flushWord()
		}
		if len(p.word) == 0 {
			p.wordStart = p.col
		}
		p.word = append(p.word, ch)
	}
}

// endLine flushes everything still open, appends the completed line and
// resets per-line state. Block comments and strings stay open across lines.
func (p *parser) endLine() {
	if p.comment != commentNone {
		if p.col > p.commentStart {
			p.line = append(p.line, Span{Type: Comment, StartCol: p.commentStart, EndCol: p.col})
		}
		if p.comment == commentLine {
			p.comment = commentNone
		}
	}
	p.flushWord()
	p.flushSpaces()
	if p.inString && p.col > p.stringStart {
		p.line = append(p.line, Span{Type: String, StartCol: p.stringStart, EndCol: p.col})
	}

	p.blocks = append(p.blocks, p.line)
	p.line = nil
	p.col = 0
	p.commentStart = 0
	p.stringStart = 0
	// The "*/" terminator cannot straddle a line break; a trailing '*'
	// must not pair with a '/' opening the next line.
	p.prevComment = 0
}

// flushWord emits the pending word classified, leaving a pending
// whitespace run untouched.
func (p *parser) flushWord() {
	if len(p.word) == 0 {
		return
	}
	w := string(p.word)
	if strings.TrimSpace(w) == "" {
		return
	}
	p.line = append(p.line, Span{Type: classify(w, p.property), StartCol: p.wordStart, EndCol: p.col})
	p.word = p.word[:0]
	p.property = false
}

// flushSpaces emits a pending whitespace run as an Unknown span so every
// line is covered without gaps.
func (p *parser) flushSpaces() {
	if len(p.word) == 0 || strings.TrimSpace(string(p.word)) != "" {
		return
	}
	p.line = append(p.line, Span{Type: Unknown, StartCol: p.wordStart, EndCol: p.col})
	p.word = p.word[:0]
}

func classify(word string, property bool) SyntaxType {
	if _, ok := genericKeywords[word]; ok {
		return Keyword
	}
	if _, ok := specialKeywords[word]; ok {
		return SpecialKeyword
	}
	if isAllUpper(word) {
		return SpecialKeyword
	}
	if property {
		return Property
	}
	return Unknown
}

// isAllUpper reports whether the word contains at least one letter and no
// lowercase letters, so CONSTANTS qualify but bare numbers do not.
func isAllUpper(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
