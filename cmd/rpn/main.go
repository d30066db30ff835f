package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/rpn"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, pow string
		hist, addr        string
		lenient, echo     bool
		prec              int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&prec, "p", 0, "precision of calculations in bits (0 for float64)")
	flag.StringVar(&pow, "pow", "left", "associativity of ^, left or right")
	flag.BoolVar(&lenient, "lenient", false, "accept unmatched parentheses")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.StringVar(&hist, "history", defaultHistory(), "interactive history file (empty for none)")
	flag.StringVar(&addr, "serve", "", "serve HTTP requests on `addr` instead of reading input")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	c := calc{prec: uint(prec), verb: verb}
	switch pow {
	case "left":
	case "right":
		c.opts = append(c.opts, rpn.RightAssocPow())
	default:
		log.Fatalf(`-pow must be "left" or "right", not %q`, pow)
	}
	if lenient {
		c.opts = append(c.opts, rpn.Lenient())
	}
	c.opts = []rpn.ParseOption{rpn.ParsingPreset(c.opts...)}

	if addr != "" {
		if err := serve(addr, c); err != nil {
			log.Fatal(err)
		}
		return
	}

	s := newSession(c, os.Stdout, os.Stderr)
	s.echo = echo
	if flag.NArg() > 0 {
		args := argSource(flag.Args())
		if err := s.run(&args); err != nil {
			log.Fatal(err)
		}
	}
	src, err := source(inname, flag.NArg() == 0, hist)
	if err != nil {
		log.Fatal(err)
	}
	if src == nil {
		return
	}
	defer src.Close()
	if err := s.run(src); err != nil {
		log.Fatal(err)
	}
}

// source opens the line source. Stdin is read if inname is "-", or if it is
// empty and std is true. A terminal gets an interactive prompt.
func source(inname string, std bool, hist string) (lineSource, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	if f == os.Stdin && interactive(f) {
		return newTermSource(hist), nil
	}
	return newScanSource(f), nil
}

func interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rpn_history")
}
