package lexer

import (
	"strings"
	"unicode"

	"github.com/kaedelang/kaede/symbol"
	"github.com/kaedelang/kaede/token"
)

// Lex scans source to completion and returns the token stream,
// including the terminal EOF token. Lexing never fails: unknown
// characters are dropped, malformed numbers pass through unvalidated,
// and unterminated strings are truncated at end of input. All of that
// is for the parser to judge.
func Lex(source string) []token.Token {
	lexer := New(source)

	var tokens []token.Token
	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

type Lexer struct {
	code     []rune
	position int // next unconsumed rune; never decreases
	line     int
}

func New(source string) *Lexer {
	return &Lexer{
		code:     []rune(source),
		position: 0,
		line:     1,
	}
}

// NextToken produces exactly one token. Once the input is exhausted it
// keeps returning EOF without advancing.
func (l *Lexer) NextToken() token.Token {
	for !l.isAtEnd() {
		char := l.peek()

		if unicode.IsSpace(char) {
			l.skipWhitespace()
			continue
		}

		if unicode.IsLetter(char) || char == '_' || char == '$' {
			return l.lexIdentOrKeyword()
		}

		if isDigit(char) {
			return l.lexNumber()
		}

		if char == '"' || char == '\'' {
			return l.lexString()
		}

		if tok, ok := l.lexOperatorOrDelimiter(); ok {
			return tok
		}

		// Not in any vocabulary: drop it and keep scanning.
		l.advance()
	}

	return token.Token{Kind: token.EOF, Line: l.line}
}

func (l *Lexer) isAtEnd() bool {
	return l.position >= len(l.code)
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}

	return l.code[l.position]
}

func (l *Lexer) advance() rune {
	char := l.code[l.position]
	l.position++
	if char == '\n' {
		l.line++
	}

	return char
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '$'
}

func (l *Lexer) lexIdentOrKeyword() token.Token {
	start := l.position
	for !l.isAtEnd() && isIdentPart(l.peek()) {
		l.advance()
	}
	word := l.code[start:l.position]

	// The whole run is captured before the keyword test, so a keyword
	// prefix ("let" in "letVar") can never split the identifier.
	if _, end, ok := symbol.Keywords().Match(word, 0, true); ok && end == len(word) {
		return token.Token{Kind: token.KEYWORD, Text: string(word), Line: l.line}
	}

	return token.Token{Kind: token.IDENT, Text: string(word), Line: l.line}
}

func (l *Lexer) lexNumber() token.Token {
	start := l.position
	for !l.isAtEnd() && (isDigit(l.peek()) || l.peek() == '.') {
		l.advance()
	}

	// No validation here: "1.2.3" and "1..2" are each one NUMBER token.
	// Numeric well-formedness is owned by the parser.
	return token.Token{Kind: token.NUMBER, Text: string(l.code[start:l.position]), Line: l.line}
}

func (l *Lexer) lexString() token.Token {
	line := l.line
	quote := l.advance()

	var value strings.Builder
	for !l.isAtEnd() {
		char := l.advance()
		if char == quote {
			break
		}
		if char == '\\' {
			if l.isAtEnd() {
				break
			}
			value.WriteRune(unescape(l.advance()))

			continue
		}
		value.WriteRune(char)
	}

	// Reaching end of input leaves the literal truncated, with no
	// error signaled.
	return token.Token{Kind: token.STRING, Text: value.String(), Line: line}
}

// unescape decodes the rune following a backslash. Anything outside
// the escape table passes through verbatim, minus the backslash.
func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	}

	return r
}

func (l *Lexer) lexOperatorOrDelimiter() (token.Token, bool) {
	if text, end, ok := symbol.Operators().Match(l.code, l.position, false); ok {
		l.advanceTo(end)

		return token.Token{Kind: token.OPERATOR, Text: text, Line: l.line}, true
	}

	if text, end, ok := symbol.Delimiters().Match(l.code, l.position, false); ok {
		l.advanceTo(end)

		return token.Token{Kind: token.DELIMITER, Text: text, Line: l.line}, true
	}

	return token.Token{}, false
}

func (l *Lexer) advanceTo(end int) {
	for l.position < end {
		l.advance()
	}
}
