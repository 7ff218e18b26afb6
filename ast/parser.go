package ast

import (
	"strconv"

	"github.com/regexdfa/followpos/syntax"
)

// Parser builds an AST from a Scanner's token stream via recursive
// descent: union -> concat -> star -> factor, with {n}/{n,}/{n,m}
// repetition expansion folded into factor.
//
// Grounded on original_source/parse.py's Parser.
type Parser struct {
	scanner *syntax.Scanner
}

// NewParser builds a Parser over an already-scanning Scanner.
func NewParser(s *syntax.Scanner) *Parser {
	return &Parser{scanner: s}
}

// Parse consumes the entire token stream and returns the root of the
// AST, wrapped as CONCAT(root, SYMBOL('#')) so the followpos
// construction has a distinguished end-marker leaf (spec.md section
// 4.4). It is an error for tokens to remain after a complete regex.
func (p *Parser) Parse() (*Node, error) {
	root, err := p.regexRule()
	if err != nil {
		return nil, err
	}
	tok, err := p.scanner.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != syntax.EOF {
		return nil, &UnexpectedTokenError{Pos: tok.Pos, Got: displayTok(tok), Expected: "end of input"}
	}
	return Concat(root, Symbol(EndMarker)), nil
}

func (p *Parser) regexRule() (*Node, error) {
	return p.union()
}

func (p *Parser) union() (*Node, error) {
	left, err := p.concat()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scanner.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != syntax.Union {
			return left, nil
		}
		p.scanner.Next()
		right, err := p.concat()
		if err != nil {
			return nil, err
		}
		left = Union(left, right)
	}
}

func (p *Parser) concat() (*Node, error) {
	left, err := p.star()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scanner.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != syntax.Concat {
			return left, nil
		}
		p.scanner.Next()
		right, err := p.star()
		if err != nil {
			return nil, err
		}
		left = Concat(left, right)
	}
}

func (p *Parser) star() (*Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scanner.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != syntax.Star {
			return node, nil
		}
		p.scanner.Next()
		node = Star(node)
	}
}

func (p *Parser) factor() (*Node, error) {
	tok, err := p.scanner.Peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case syntax.LParen:
		lparen, err := p.scanner.Next()
		if err != nil {
			return nil, err
		}
		node, err := p.regexRule()
		if err != nil {
			return nil, err
		}
		rparen, err := p.scanner.Next()
		if err != nil {
			return nil, err
		}
		if rparen.Kind != syntax.RParen {
			return nil, &UnclosedGroupError{Pos: lparen.Pos}
		}
		return p.maybeRepeat(node)

	case syntax.Symbol:
		p.scanner.Next()
		var node *Node
		if tok.Value == "$" {
			node = Epsilon()
		} else {
			node = Symbol(tok.Value)
		}
		return p.maybeRepeat(node)

	default:
		return nil, &UnexpectedTokenError{Pos: tok.Pos, Got: displayTok(tok), Expected: "symbol, '(', or epsilon"}
	}
}

// maybeRepeat applies a trailing {n}/{n,}/{n,m} repetition to node if
// one follows, otherwise returns node unchanged.
func (p *Parser) maybeRepeat(node *Node) (*Node, error) {
	tok, err := p.scanner.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != syntax.LBrace {
		return node, nil
	}
	return p.repeatFunctions(node)
}

// repeatFunctions parses {n}, {n,}, or {n,m} following an already-parsed
// factor and expands it into the equivalent CONCAT/UNION/STAR subtree.
//
// Grounded on original_source/parse.py's repeatFunctions/repeat/
// repeat_at_least/repeat_between. {n,m} expands as a UNION of the n, n+1,
// ..., m exact-repeat forms (spec.md Open Question 3), and {0} is
// rejected rather than treated as an optional match (Open Question 2).
func (p *Parser) repeatFunctions(node *Node) (*Node, error) {
	lbrace, err := p.scanner.Next() // consume '{'
	if err != nil {
		return nil, err
	}

	nTok, err := p.scanner.Next()
	if err != nil {
		return nil, err
	}
	if nTok.Kind != syntax.Number {
		return nil, &UnexpectedTokenError{Pos: nTok.Pos, Got: displayTok(nTok), Expected: "repetition count"}
	}
	n, convErr := strconv.Atoi(nTok.Value)
	if convErr != nil {
		return nil, &BadRepetitionError{Pos: nTok.Pos, Reason: "count is not a valid integer"}
	}

	next, err := p.scanner.Peek()
	if err != nil {
		return nil, err
	}

	switch next.Kind {
	case syntax.RBrace:
		p.scanner.Next()
		return p.repeat(node, n, lbrace.Pos)

	case syntax.Comma:
		p.scanner.Next()
		after, err := p.scanner.Peek()
		if err != nil {
			return nil, err
		}
		if after.Kind == syntax.Number {
			p.scanner.Next()
			m, convErr := strconv.Atoi(after.Value)
			if convErr != nil {
				return nil, &BadRepetitionError{Pos: after.Pos, Reason: "bound is not a valid integer"}
			}
			if _, err := p.expect(syntax.RBrace); err != nil {
				return nil, err
			}
			return p.repeatBetween(node, n, m, lbrace.Pos)
		}
		if _, err := p.expect(syntax.RBrace); err != nil {
			return nil, err
		}
		return p.repeatAtLeast(node, n, lbrace.Pos)

	default:
		return nil, &UnexpectedTokenError{Pos: next.Pos, Got: displayTok(next), Expected: "'}' or ','"}
	}
}

// repeat expands node repeated exactly n times.
func (p *Parser) repeat(node *Node, n int, pos int) (*Node, error) {
	if n < 1 {
		return nil, &BadRepetitionError{Pos: pos, Reason: "repetition count must be at least 1"}
	}
	if n == 1 {
		return clone(node), nil
	}
	current := clone(node)
	for i := 1; i < n; i++ {
		current = Concat(current, clone(node))
	}
	return current, nil
}

// repeatAtLeast expands node repeated n or more times: n exact copies
// followed by a Kleene star over one more copy.
func (p *Parser) repeatAtLeast(node *Node, n int, pos int) (*Node, error) {
	base, err := p.repeat(node, n, pos)
	if err != nil {
		return nil, err
	}
	return Concat(base, Star(clone(node))), nil
}

// repeatBetween expands node repeated between n and m times (inclusive)
// as a union of the exact-repeat forms for each count in [n, m].
func (p *Parser) repeatBetween(node *Node, n, m int, pos int) (*Node, error) {
	if n < 1 || m < n {
		return nil, &BadRepetitionError{Pos: pos, Reason: "invalid repetition range"}
	}
	result, err := p.repeat(node, n, pos)
	if err != nil {
		return nil, err
	}
	for i := n + 1; i <= m; i++ {
		r, err := p.repeat(node, i, pos)
		if err != nil {
			return nil, err
		}
		result = Union(result, r)
	}
	return result, nil
}

// expect consumes the next token and requires it to have kind k.
func (p *Parser) expect(k syntax.Kind) (syntax.Token, error) {
	tok, err := p.scanner.Next()
	if err != nil {
		return syntax.Token{}, err
	}
	if tok.Kind != k {
		return syntax.Token{}, &UnexpectedTokenError{Pos: tok.Pos, Got: displayTok(tok), Expected: k.String()}
	}
	return tok, nil
}

func displayTok(tok syntax.Token) string {
	if tok.Kind == syntax.EOF {
		return "<EOF>"
	}
	return tok.Value
}
