// Package symbol provides longest-prefix matching over the fixed
// vocabularies of the language: operators, delimiters, and keywords.
package symbol

import (
	"sync"
	"unicode"
)

type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: map[rune]*node{}}
}

func (n *node) insert(sym string) {
	for _, r := range sym {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	n.terminal = true
}

// Matcher is a character trie over a fixed vocabulary. It is built
// once and never mutated, so it is safe for concurrent read-only use.
type Matcher struct {
	root *node
}

// NewMatcher builds a matcher from a non-empty vocabulary.
func NewMatcher(vocabulary []string) *Matcher {
	root := newNode()
	for _, sym := range vocabulary {
		root.insert(sym)
	}

	return &Matcher{root: root}
}

// Match walks the trie over code starting at start and returns the
// longest vocabulary entry found there, with its end index (exclusive).
// With needsBoundary, a candidate only counts if it is followed by a
// boundary rune or the end of input; this is how keyword recognition
// rejects "let" as a prefix of "letVar".
func (m *Matcher) Match(code []rune, start int, needsBoundary bool) (string, int, bool) {
	current := m.root
	lastEnd := -1

	for i := start; i < len(code); i++ {
		child, ok := current.children[code[i]]
		if !ok {
			break
		}
		current = child

		if !current.terminal {
			continue
		}
		if needsBoundary && i+1 < len(code) && !IsBoundary(code[i+1]) {
			continue
		}
		lastEnd = i + 1
	}

	if lastEnd < 0 {
		return "", 0, false
	}

	return string(code[start:lastEnd]), lastEnd, true
}

// IsBoundary reports whether r can legally follow a keyword:
// whitespace or any delimiter.
func IsBoundary(r rune) bool {
	return unicode.IsSpace(r) || delimiterRunes[r]
}

var delimiters = []string{"(", ")", "{", "}", "[", "]", ",", ";", "."}

var delimiterRunes = func() map[rune]bool {
	set := make(map[rune]bool, len(delimiters))
	for _, d := range delimiters {
		for _, r := range d {
			set[r] = true
		}
	}

	return set
}()

// The three vocabulary matchers are process-wide singletons, built on
// first use and shared read-only by every Lexer.

var Operators = sync.OnceValue(func() *Matcher {
	return NewMatcher([]string{
		"+", "-", "*", "**", "/", "%", "==", "!=", "<", "<=", ">",
		">=", "&&", "||", "!", "=", "+=", "-=", "*=", "/=", "%=",
		"===", "...",
	})
})

var Delimiters = sync.OnceValue(func() *Matcher {
	return NewMatcher(delimiters)
})

var Keywords = sync.OnceValue(func() *Matcher {
	return NewMatcher([]string{
		"let", "const", "var", "if", "else", "for", "while", "do", "break",
		"continue", "return", "function", "true", "false", "null", "undefined",
		"new", "this", "delete", "typeof", "in", "instanceof", "void", "catch",
		"try", "finally", "switch", "case", "default", "throw", "class", "extends",
		"super", "import", "export", "from", "as", "await", "async", "yield",
	})
})
