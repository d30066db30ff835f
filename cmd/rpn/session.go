package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/rpn"
)

// lineSource yields one input line per call to Line. At the end of input,
// Line returns io.EOF.
type lineSource interface {
	Line() (string, error)
	Close() error
}

// session reads commands and expressions, prints results, and owns the
// current function definition.
type session struct {
	calc
	// fn is the current function, replaced by each definition.
	fn   *rpn.Func
	echo bool
	out  io.Writer
	errs io.Writer
	errc *color.Color
}

func newSession(c calc, out, errs io.Writer) *session {
	return &session{
		calc: c,
		out:  out,
		errs: errs,
		errc: color.New(color.FgRed),
	}
}

// run handles lines from src until it is exhausted or an exit command.
func (s *session) run(src lineSource) error {
	for {
		line, err := src.Line()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !s.handle(line) {
			return nil
		}
	}
}

// handle processes one line of input. The result is false if the line asks
// to end the session.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
	case line == "exit", line == "quit":
		return false
	case line == "show":
		if s.fn == nil {
			s.fail(errNoFunc)
			break
		}
		fmt.Fprintln(s.out, s.fn)
	case strings.HasPrefix(line, "define="):
		s.define(line[len("define="):])
	case strings.HasPrefix(line, "f="):
		s.define(line[len("f="):])
	case isCall(line, "apply("):
		s.apply(line[len("apply(") : len(line)-1])
	case isCall(line, "f("):
		s.apply(line[len("f(") : len(line)-1])
	default:
		s.eval(line)
	}
	return true
}

var errNoFunc = errors.New("no function defined; use define=<expr>")

// isCall reports whether line looks like name(...).
func isCall(line, prefix string) bool {
	return strings.HasPrefix(line, prefix) && strings.HasSuffix(line, ")")
}

func (s *session) define(src string) {
	f, err := rpn.Define(src, s.opts...)
	if err != nil {
		s.fail(err)
		return
	}
	s.fn = f
	fmt.Fprintln(s.out, f)
}

func (s *session) apply(arg string) {
	if s.fn == nil {
		s.fail(errNoFunc)
		return
	}
	r, err := s.call(s.fn, arg)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out, r)
}

func (s *session) eval(src string) {
	p, err := rpn.Parse(src, s.opts...)
	if err != nil {
		s.fail(err)
		return
	}
	if s.echo {
		fmt.Fprintf(s.out, "%v : ", p)
	}
	r, err := s.evalPostfix(p)
	if err != nil {
		if s.echo {
			fmt.Fprintln(s.out)
		}
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out, r)
}

// fail reports an error and lets the session continue.
func (s *session) fail(err error) {
	s.errc.Fprintln(s.errs, "error:", err)
}

// scanSource reads lines from a non-interactive input. Lines may be any
// length.
type scanSource struct {
	r *bufio.Reader
	c io.Closer
}

func newScanSource(r io.Reader) *scanSource {
	s := &scanSource{r: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok && r != os.Stdin {
		s.c = c
	}
	return s
}

func (s *scanSource) Line() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (s *scanSource) Close() error {
	if s.c == nil {
		return nil
	}
	return s.c.Close()
}

// argSource yields command-line arguments as lines.
type argSource []string

func (s *argSource) Line() (string, error) {
	if len(*s) == 0 {
		return "", io.EOF
	}
	r := (*s)[0]
	*s = (*s)[1:]
	return r, nil
}

func (s *argSource) Close() error {
	return nil
}

// termSource prompts for lines on a terminal with line editing and history.
type termSource struct {
	ln   *liner.State
	hist string
}

func newTermSource(hist string) *termSource {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	return &termSource{ln: ln, hist: hist}
}

func (s *termSource) Line() (string, error) {
	line, err := s.ln.Prompt("> ")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		s.ln.AppendHistory(line)
	}
	return line, nil
}

func (s *termSource) Close() error {
	if s.hist != "" {
		if f, err := os.Create(s.hist); err == nil {
			s.ln.WriteHistory(f)
			f.Close()
		}
	}
	return s.ln.Close()
}
