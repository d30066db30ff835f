package rpn

// ParseOption is an option for converting to postfix.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	lenientopt struct{}
	powopt     bool
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// lenient indicates that unmatched parentheses are not errors.
	lenient bool
	// rpow indicates that Pow is right-associative.
	rpow bool
}

// Lenient tells the parser to accept unmatched parentheses. A close
// parenthesis with no open parenthesis is dropped, and an open parenthesis
// that is never closed is left in the output, where evaluation rejects it.
func Lenient() ParseOption {
	return lenientopt{}
}

func (lenientopt) parseOption(p parsectx) parsectx {
	p.lenient = true
	return p
}

// RightAssocPow makes exponentiation right-associative, so that "2^2^3" is
// "2^(2^3)". By default every operator is left-associative, and "2^2^3" is
// "(2^2)^3".
func RightAssocPow() ParseOption {
	return powopt(true)
}

// LeftAssocPow restores the default left-associative exponentiation,
// overriding any earlier RightAssocPow.
func LeftAssocPow() ParseOption {
	return powopt(false)
}

func (o powopt) parseOption(p parsectx) parsectx {
	p.rpow = bool(o)
	return p
}

// ParsingPreset combines several options into one. A preset replaces every
// option applied before it, and options applied after a preset override it.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(parsectx) parsectx {
	return *o
}

// rightAssoc reports whether op groups right to left under the options.
func (p *parsectx) rightAssoc(op Op) bool {
	return op == Pow && p.rpow
}
