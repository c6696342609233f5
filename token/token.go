package token

import "fmt"

type Kind int

const (
	EOF Kind = iota

	KEYWORD
	IDENT
	NUMBER
	STRING
	OPERATOR
	DELIMITER
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case KEYWORD:
		return "KEYWORD"
	case IDENT:
		return "IDENT"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case OPERATOR:
		return "OPERATOR"
	case DELIMITER:
		return "DELIMITER"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one classified unit of source text. Text holds the exact
// matched text, except for STRING tokens, which hold the decoded value
// (quotes stripped, escapes resolved), and EOF, which holds nothing.
type Token struct {
	Kind Kind
	Text string
	Line int
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d}", t.Kind, t.Text, t.Line)
}
