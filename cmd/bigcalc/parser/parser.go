// Package parser implements the calculator's recursive-descent grammar:
//
//	expr   := sum EOL | END
//	sum    := term (('+'|'-') term)*
//	term   := factor (('*'|'/') factor)*
//	factor := '-' factor | '(' sum ')' | NUM
//
// Grounded on original_source/calc.c's expr/sum/term/factor. Division by a
// divisor that evaluates to zero (a literal 0 or an expression such as
// (1-1)) is caught here, before bignum.Int.Div is ever called — per
// the core's contract, it must never be invoked with a zero divisor.
package parser

import (
	"fmt"

	"github.com/dec18/bignum"
	"github.com/dec18/bignum/cmd/bigcalc/lexer"
)

// Parser consumes tokens from a lexer.Lexer and evaluates one expression
// per line.
type Parser struct {
	lex   *lexer.Lexer
	token lexer.Token
}

// New returns a Parser reading tokens from lex. It primes the first token.
func New(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.token = tok
	return nil
}

// Advance fetches the next token, for the REPL driver to call between
// expressions: Expr leaves the EOL token unconsumed (matching calc.c's
// expr(), which must not block reading past the line it was given), so the
// caller advances past it before parsing the next line.
func (p *Parser) Advance() error {
	return p.advance()
}

// Expr parses and evaluates one expression. It returns (_, false, nil) at
// end-of-input, matching calc.c's expr() returning NULL there.
func (p *Parser) Expr() (bignum.Int, bool, error) {
	if p.token.Kind == lexer.End {
		return bignum.Int{}, false, nil
	}

	v, err := p.sum()
	if err != nil {
		return bignum.Int{}, false, err
	}

	if p.token.Kind != lexer.EOL {
		return bignum.Int{}, false, fmt.Errorf("trailing character(s)")
	}

	return v, true, nil
}

func (p *Parser) sum() (bignum.Int, error) {
	x, err := p.term()
	if err != nil {
		return bignum.Int{}, err
	}

	for {
		switch p.token.Kind {
		case lexer.Add:
			if err := p.advance(); err != nil {
				return bignum.Int{}, err
			}
			y, err := p.term()
			if err != nil {
				return bignum.Int{}, err
			}
			x = x.Add(y)
		case lexer.Sub:
			if err := p.advance(); err != nil {
				return bignum.Int{}, err
			}
			y, err := p.term()
			if err != nil {
				return bignum.Int{}, err
			}
			x = x.Sub(y)
		default:
			return x, nil
		}
	}
}

func (p *Parser) term() (bignum.Int, error) {
	x, err := p.factor()
	if err != nil {
		return bignum.Int{}, err
	}

	for {
		switch p.token.Kind {
		case lexer.Mul:
			if err := p.advance(); err != nil {
				return bignum.Int{}, err
			}
			y, err := p.factor()
			if err != nil {
				return bignum.Int{}, err
			}
			x = x.Mul(y)
		case lexer.Div:
			if err := p.advance(); err != nil {
				return bignum.Int{}, err
			}
			y, err := p.factor()
			if err != nil {
				return bignum.Int{}, err
			}
			if y.IsZero() {
				return bignum.Int{}, fmt.Errorf("division by zero")
			}
			x = x.Div(y)
		default:
			return x, nil
		}
	}
}

func (p *Parser) factor() (bignum.Int, error) {
	switch p.token.Kind {
	case lexer.Sub:
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		x, err := p.factor()
		if err != nil {
			return bignum.Int{}, err
		}
		return x.Neg(), nil

	case lexer.LParen:
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		x, err := p.sum()
		if err != nil {
			return bignum.Int{}, err
		}
		if p.token.Kind != lexer.RParen {
			return bignum.Int{}, fmt.Errorf("expected ')'")
		}
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		return x, nil

	case lexer.Num:
		x, err := bignum.FromDecimal(p.token.Value)
		if err != nil {
			return bignum.Int{}, err
		}
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		return x, nil

	default:
		return bignum.Int{}, fmt.Errorf("expected '-', number or '('")
	}
}
