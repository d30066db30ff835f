package rpn_test

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/rpn"
)

func TestDefine(t *testing.T) {
	cases := []struct {
		name string
		src  string
		v    string
		args []float64
		want []float64
	}{
		{"square", "x*x+1", "x", []float64{0, 3, -2}, []float64{1, 10, 5}},
		{"reuse", "t^2-t", "t", []float64{2, 3}, []float64{2, 6}},
		{"long-name", "(val+1)*(val-1)", "val", []float64{5}, []float64{24}},
		{"recip", "1/x", "x", []float64{4}, []float64{0.25}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := rpn.Define(c.src)
			if err != nil {
				t.Fatalf("defining %q: %v", c.src, err)
			}
			if f.Var() != c.v {
				t.Errorf("wrong variable: want %q, got %q", c.v, f.Var())
			}
			for i, x := range c.args {
				r, err := f.Call(x)
				if err != nil {
					t.Errorf("%q at %g: %v", c.src, x, err)
					continue
				}
				if r != c.want[i] {
					t.Errorf("%q at %g: want %g, got %g", c.src, x, c.want[i], r)
				}
			}
		})
	}
}

func TestDefineErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind error
		vars []string
	}{
		{"none", "1+2", rpn.ErrArity, nil},
		{"two", "x+y", rpn.ErrArity, []string{"x", "y"}},
		{"bad-token", "2x", rpn.ErrInvalidToken, nil},
		{"unbalanced", "(x", rpn.ErrUnbalanced, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := rpn.Define(c.src)
			if err == nil {
				t.Fatalf("defining %q gave no error and %v", c.src, f)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("defining %q: want %v, got %v", c.src, c.kind, err)
			}
			var ae *rpn.ArityError
			if errors.As(err, &ae) {
				if diff := cmp.Diff(c.vars, ae.Vars); diff != "" {
					t.Errorf("defining %q: wrong vars (-want +got)\n%s", c.src, diff)
				}
			}
		})
	}
}

func TestFuncCallErrors(t *testing.T) {
	f, err := rpn.Define("x x")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Call(1); !errors.Is(err, rpn.ErrMalformed) {
		t.Errorf("want ErrMalformed, got %v", err)
	}
	f, err = rpn.Define("x+")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Call(1); !errors.Is(err, rpn.ErrStackUnderflow) {
		t.Errorf("want ErrStackUnderflow, got %v", err)
	}
}

func TestFuncImmutable(t *testing.T) {
	f, err := rpn.Define("x*2")
	if err != nil {
		t.Fatal(err)
	}
	p := f.Postfix()
	p[0] = rpn.Value(100)
	if r, _ := f.Call(3); r != 6 {
		t.Errorf("modifying Postfix changed the function: got %g", r)
	}
	if s := f.String(); s != "f(x) = x 2 *" {
		t.Errorf("wrong string %q", s)
	}
	src := rpn.Stream{rpn.Variable("y"), rpn.Value(1), rpn.Operator(rpn.Add)}
	g, err := rpn.FuncOf(src)
	if err != nil {
		t.Fatal(err)
	}
	src[1] = rpn.Value(50)
	if r, _ := g.Call(1); r != 2 {
		t.Errorf("modifying FuncOf input changed the function: got %g", r)
	}
}

func TestFuncConcurrent(t *testing.T) {
	f, err := rpn.Define("x^2")
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(x float64) {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				r, err := f.Call(x)
				if err != nil || r != x*x {
					t.Errorf("f(%g) = %g, %v", x, r, err)
					return
				}
			}
		}(float64(i))
	}
	wg.Wait()
}

func TestFuncCallBig(t *testing.T) {
	f, err := rpn.Define("x/3")
	if err != nil {
		t.Fatal(err)
	}
	x, _, err := new(big.Float).SetPrec(200).Parse("1", 10)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.CallBig(x, 200)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.Text('g', 40), "0.3333333333333333333333333333333333333333"; got != want {
		t.Errorf("wrong result: want %s, got %s", want, got)
	}
	x.SetInf(true)
	r, err = f.CallBig(x, 64)
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsInf() || !r.Signbit() {
		t.Errorf("-inf/3 gave %g", r)
	}
}
