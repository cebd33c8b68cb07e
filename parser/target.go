package parser

import (
	"strconv"
	"strings"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/lexer"
)

// parseConversionTarget parses what follows `to`/`as`/`->`: a unit
// composition, a fixed UTC/GMT offset (`UTC+5`, returned as a one-term
// Units naming the offset "+05"), a presentation format (`base 16`, `6 sig figs`, `4
// decimals`, `scientific`, `fraction`, `percentage`, `unix seconds`), or a
// property target (`.day`).
func (p *Parser) parseConversionTarget() (ast.Node, error) {
	tok := p.currentToken()

	if tok.Type == lexer.DOT {
		p.advance()
		propTok, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		return &ast.PropertyTarget{Property: strings.ToLower(propTok.Value), Range: spanRange(tokenToRange(tok), tokenToRange(propTok))}, nil
	}

	if tok.Type == lexer.IDENTIFIER {
		lower := strings.ToLower(tok.Value)
		switch lower {
		case "utc", "gmt":
			save := p.pos
			p.advance()
			if off := p.consumeOffsetSuffix(); off != "" {
				rng := tokenToRange(tok)
				term := &ast.UnitWithExponent{Unit: &ast.Unit{Symbol: off, Range: rng}, Exponent: 1, Sign: 1, Range: rng}
				return &ast.Units{Terms: []*ast.UnitWithExponent{term}, Range: rng}, nil
			}
			p.pos = save
		case "base":
			p.advance()
			numTok, err := p.expect(lexer.NUMBER)
			if err != nil {
				return nil, err
			}
			n, _ := strconv.Atoi(numTok.Value)
			return &ast.PresentationFormat{Kind: "base", Arg: n, Range: spanRange(tokenToRange(tok), tokenToRange(numTok))}, nil
		case "scientific":
			p.advance()
			return &ast.PresentationFormat{Kind: "scientific", Range: tokenToRange(tok)}, nil
		case "fraction":
			p.advance()
			return &ast.PresentationFormat{Kind: "fraction", Range: tokenToRange(tok)}, nil
		case "percentage":
			p.advance()
			return &ast.PresentationFormat{Kind: "percentage", Range: tokenToRange(tok)}, nil
		case "unix":
			p.advance()
			unit := "seconds"
			end := tok
			if p.currentToken().Type == lexer.IDENTIFIER {
				unit = strings.ToLower(p.currentToken().Value)
				end = p.advance()
			}
			return &ast.PresentationFormat{Kind: "unix", Unit: unit, Range: spanRange(tokenToRange(tok), tokenToRange(end))}, nil
		}
	}

	// "N sig figs" / "N decimals" — a leading number, not a unit-position token.
	if tok.Type == lexer.NUMBER {
		next := p.peek(1)
		if next.Type == lexer.IDENTIFIER {
			nextLower := strings.ToLower(next.Value)
			if nextLower == "sig" || nextLower == "decimals" {
				numTok := p.advance()
				n, _ := strconv.Atoi(numTok.Value)
				if nextLower == "sig" {
					sigTok := p.advance() // "sig"
					figsTok, err := p.expect(lexer.IDENTIFIER)
					if err != nil || strings.ToLower(figsTok.Value) != "figs" {
						return nil, &ParseError{Message: "expected 'figs' after 'sig'", Line: sigTok.Line, Column: sigTok.Column}
					}
					return &ast.PresentationFormat{Kind: "sigfigs", Arg: n, Range: spanRange(tokenToRange(numTok), tokenToRange(figsTok))}, nil
				}
				decTok := p.advance() // "decimals"
				return &ast.PresentationFormat{Kind: "decimals", Arg: n, Range: spanRange(tokenToRange(numTok), tokenToRange(decTok))}, nil
			}
		}
	}

	return p.parseUnitsSequence(1, false)
}
