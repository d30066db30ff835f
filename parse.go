package rpn

import (
	"github.com/edwingeng/deque"
)

// opentry is an element of the operator stack. Parentheses record their index
// in the input for error reporting.
type opentry struct {
	tok Token
	idx int
}

// ToPostfix reorders tokens from infix to postfix order using the
// shunting-yard algorithm. Values and variables pass straight to the output;
// an operator first pops every stacked operator of greater or equal
// precedence, so all operators are left-associative unless RightAssocPow is
// given.
//
// Unmatched parentheses are a *BracketError unless the Lenient option is
// given. ToPostfix does not otherwise check the structure of the expression;
// that is left to the evaluator.
func ToPostfix(tokens Stream, opts ...ParseOption) (Stream, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	out := make(Stream, 0, len(tokens))
	stack := deque.NewDeque()
	for i, tok := range tokens {
		switch tok.Kind {
		case KindValue, KindVar:
			out = append(out, tok)
		case KindOp:
			for !stack.Empty() {
				top := stack.Back().(opentry).tok
				if top.Kind != KindOp || !p.yields(top.Op, tok.Op) {
					break
				}
				stack.PopBack()
				out = append(out, top)
			}
			stack.PushBack(opentry{tok: tok, idx: i})
		case KindOpen:
			stack.PushBack(opentry{tok: tok, idx: i})
		case KindClose:
			matched := false
			for !stack.Empty() {
				top := stack.PopBack().(opentry).tok
				if top.Kind == KindOpen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched && !p.lenient {
				return nil, &BracketError{Index: i, Close: true}
			}
		default:
			panic("rpn: unknown token: " + tok.String())
		}
	}
	for !stack.Empty() {
		e := stack.PopBack().(opentry)
		if e.tok.Kind == KindOpen && !p.lenient {
			return nil, &BracketError{Index: e.idx}
		}
		out = append(out, e.tok)
	}
	return out, nil
}

// yields reports whether the stacked operator top must be output before
// pushing op.
func (p *parsectx) yields(top, op Op) bool {
	if top.Prec() != op.Prec() {
		return top.Prec() > op.Prec()
	}
	return !p.rightAssoc(op)
}

// Parse tokenizes src and converts it to postfix order.
func Parse(src string, opts ...ParseOption) (Stream, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ToPostfix(toks, opts...)
}
