// Command bigcalc is a REPL for arbitrary-precision integer arithmetic,
// grounded on original_source/calc.c's main(): read one expression per
// line, print its value to stdout, or print a single `error: ...` line to
// stderr and exit non-zero.
package main

import (
	"fmt"
	"os"

	"github.com/dec18/bignum/cmd/bigcalc/lexer"
	"github.com/dec18/bignum/cmd/bigcalc/parser"
)

func main() {
	p, err := parser.New(lexer.New(os.Stdin))
	if err != nil {
		fail(err)
	}

	for {
		v, ok, err := p.Expr()
		if err != nil {
			fail(err)
		}
		if !ok {
			return
		}

		fmt.Println(v.String())

		if err := p.Advance(); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
	os.Exit(1)
}
