package rpn_test

import (
	"fmt"

	"github.com/zephyrtronium/rpn"
)

func Example() {
	p, _ := rpn.Parse("(1 + 2) * 3 ^ 2")
	r, _ := rpn.Eval(p)
	fmt.Println(p)
	fmt.Println(r)

	// Output:
	// 1 2 + 3 2 ^ *
	// 27
}

func ExampleBind() {
	p, _ := rpn.Parse("x^3/2 - x")
	for i := 0; i < 4; i++ {
		y, _ := rpn.Eval(rpn.Bind(p, float64(i)))
		fmt.Printf("x = %d   y = %g\n", i, y)
	}

	// Output:
	// x = 0   y = 0
	// x = 1   y = -0.5
	// x = 2   y = 2
	// x = 3   y = 10.5
}

func ExampleFunc() {
	f, _ := rpn.Define("t*t + 1")
	fmt.Println(f)
	r, _ := f.Call(3)
	fmt.Println(r)

	// Output:
	// f(t) = t t * 1 +
	// 10
}

func ExampleRightAssocPow() {
	l, _ := rpn.EvalString("2^2^3")
	r, _ := rpn.EvalString("2^2^3", rpn.RightAssocPow())
	fmt.Println(l, r)

	// Output:
	// 64 256
}
