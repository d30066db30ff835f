package rpn

import (
	"math"
	"strconv"
	"strings"
)

// Token is one element of an expression in either infix or postfix order.
// Tokens are plain values and may be copied freely.
type Token struct {
	// Kind selects which other fields are meaningful.
	Kind Kind
	// Op is the operator for KindOp tokens.
	Op Op
	// Num is the value of a KindValue token.
	Num float64
	// Text is the name of a KindVar token. For KindValue tokens produced by
	// Tokenize, it is the literal text of the number; tokens created by Value
	// or Bind have no text.
	Text string
}

// Kind is the kind of a token.
type Kind int8

const (
	kindNone Kind = iota
	// KindValue is a finite number.
	KindValue
	// KindVar is a variable name, an unbound slot for a value.
	KindVar
	// KindOp is a binary operator.
	KindOp
	// KindOpen is an open parenthesis.
	KindOpen
	// KindClose is a close parenthesis.
	KindClose
)

func (k Kind) String() string {
	switch k {
	case kindNone:
		return "None"
	case KindValue:
		return "Value"
	case KindVar:
		return "Var"
	case KindOp:
		return "Op"
	case KindOpen:
		return "Open"
	case KindClose:
		return "Close"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is a binary operator.
type Op int8

const (
	opNone Op = iota
	Add       // l + r
	Sub       // l - r
	Mul       // l * r
	Div       // l / r
	Pow       // l ^ r
)

// Operators contains the runes which the tokenizer emits as operators, in
// the order of the Op constants.
const Operators = "+-*/^"

func (op Op) String() string {
	if op <= opNone || int(op) > len(Operators) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op-1 : op]
}

// Prec returns the precedence of the operator. Higher binds tighter. Add and
// Sub are 1, Mul and Div are 2, and Pow is 3.
func (op Op) Prec() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	case Pow:
		return 3
	default:
		panic("rpn: precedence of invalid operator " + op.String())
	}
}

// Apply computes l op r with float64 semantics. Division by zero and powers
// with no real result give infinities and NaN rather than errors.
func (op Op) Apply(l, r float64) float64 {
	switch op {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	case Div:
		return l / r
	case Pow:
		return math.Pow(l, r)
	default:
		panic("rpn: apply invalid operator " + op.String())
	}
}

// Value creates a number token.
func Value(x float64) Token {
	return Token{Kind: KindValue, Num: x}
}

// Variable creates a variable token.
func Variable(name string) Token {
	return Token{Kind: KindVar, Text: name}
}

// Operator creates an operator token.
func Operator(op Op) Token {
	return Token{Kind: KindOp, Op: op}
}

// Parenthesis tokens.
var (
	OpenParen  = Token{Kind: KindOpen}
	CloseParen = Token{Kind: KindClose}
)

// String formats the token as it would appear in an expression.
func (t Token) String() string {
	switch t.Kind {
	case KindValue:
		if t.Text != "" {
			return t.Text
		}
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case KindVar:
		return t.Text
	case KindOp:
		return t.Op.String()
	case KindOpen:
		return "("
	case KindClose:
		return ")"
	default:
		return "<" + t.Kind.String() + ">"
	}
}

// Stream is an ordered sequence of tokens, either in infix order as produced
// by Tokenize or in postfix order as produced by ToPostfix.
type Stream []Token

// String formats the tokens separated by spaces.
func (s Stream) String() string {
	var b strings.Builder
	for i, t := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Vars returns the sorted distinct variable names in a stream.
func Vars(s Stream) []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range s {
		if t.Kind == KindVar && !seen[t.Text] {
			seen[t.Text] = true
			names = append(names, t.Text)
		}
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
