package main

import (
	"github.com/valyala/fasthttp"

	"github.com/zephyrtronium/rpn"
)

// handler serves GET /eval?expr=<expr>. If an x parameter is present, expr
// is defined as a function and applied to the value of x, itself an
// expression. Each request is independent; there is no shared function.
func handler(c calc) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if string(ctx.Path()) != "/eval" {
			ctx.Error("not found", fasthttp.StatusNotFound)
			return
		}
		if !ctx.IsGet() {
			ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
			return
		}
		args := ctx.QueryArgs()
		expr := string(args.Peek("expr"))
		var (
			r   string
			err error
		)
		if args.Has("x") {
			var f *rpn.Func
			f, err = rpn.Define(expr, c.opts...)
			if err == nil {
				r, err = c.call(f, string(args.Peek("x")))
			}
		} else {
			r, err = c.eval(expr)
		}
		if err != nil {
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
			return
		}
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString(r + "\n")
	}
}

func serve(addr string, c calc) error {
	return fasthttp.ListenAndServe(addr, handler(c))
}
