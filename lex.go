package rpn

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// OpenBracket and CloseBracket are the runes which group expressions.
const (
	OpenBracket  = '('
	CloseBracket = ')'
)

type lexer struct {
	src io.RuneReader
	buf strings.Builder
	// rune is the number of runes read so far.
	rune int
	// start is the 1-based column of the first rune in buf.
	start int
	out   Stream
}

// Tokenize converts an expression into tokens in infix order. Whitespace never
// produces a token, but it ends a pending number or name, so "3 4" is two
// values. Operators and parentheses are always emitted as such; in
// particular, there is no unary minus, so "-1" is a Sub followed by a Value.
//
// Any run of other characters must be a finite decimal number or consist
// entirely of letters, in which case it is a variable. Otherwise the result
// is a *TokenError.
func Tokenize(src string) (Stream, error) {
	return lex(strings.NewReader(src))
}

func lex(src io.RuneReader) (Stream, error) {
	l := lexer{src: src}
	for {
		r, sz, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if sz > 0 {
			l.rune++
		}
		switch {
		case unicode.IsSpace(r):
			if err := l.flush(); err != nil {
				return nil, err
			}
		case r == OpenBracket:
			if err := l.emit(OpenParen); err != nil {
				return nil, err
			}
		case r == CloseBracket:
			if err := l.emit(CloseParen); err != nil {
				return nil, err
			}
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				if err := l.emit(Operator(Op(k + 1))); err != nil {
					return nil, err
				}
				continue
			}
			if l.buf.Len() == 0 {
				l.start = l.rune
			}
			l.buf.WriteRune(r)
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.out, nil
}

// emit flushes the literal buffer and then appends tok.
func (l *lexer) emit(tok Token) error {
	if err := l.flush(); err != nil {
		return err
	}
	l.out = append(l.out, tok)
	return nil
}

// flush classifies the literal buffer, if any, into a token.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	defer l.buf.Reset()
	s := l.buf.String()
	if x, ok := number(s); ok {
		l.out = append(l.out, Token{Kind: KindValue, Num: x, Text: s})
		return nil
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return &TokenError{Text: s, Col: l.start}
		}
	}
	l.out = append(l.out, Variable(s))
	return nil
}

// number parses a decimal literal. Hexadecimal, inf, nan, and values which
// overflow float64 are not numbers.
func number(s string) (float64, bool) {
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9', r == '.', r == 'e', r == 'E':
		default:
			return 0, false
		}
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}
