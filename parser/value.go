package parser

import (
	"strconv"
	"strings"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/constants"
	"github.com/notecalc/notecalc/lexer"
)

var booleanWords = map[string]bool{
	"true": true, "false": true, "yes": true, "no": true,
	"t": true, "f": true, "y": true, "n": true,
}

func booleanValue(word string) bool {
	switch strings.ToLower(word) {
	case "true", "yes", "t", "y":
		return true
	default:
		return false
	}
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.currentToken()
	switch tok.Type {
	case lexer.NUMBER:
		first, err := p.parseNumberAtom(false)
		if err != nil {
			return nil, err
		}
		return p.maybeComposite(first)
	case lexer.CURRENCY:
		return p.parseCurrencyAtom()
	case lexer.IDENTIFIER:
		return p.parseIdentifierAtom()
	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseConversion()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &ParseError{Message: "unexpected token " + tok.Type.String(), Line: tok.Line, Column: tok.Column}
	}
}

// parseNumberAtom parses a NumberLiteral/date/time literal and any units
// that immediately follow a bare number. degreeCtx controls whether a
// trailing PRIME/DPRIME is read as feet/inches or arcminutes/arcseconds,
// for composite continuations like `10° 30' 15"`.
func (p *Parser) parseNumberAtom(degreeCtx bool) (ast.Node, error) {
	if node, ok, err := p.tryDateTimeLiteral(); err != nil {
		return nil, err
	} else if ok {
		return node, nil
	}

	numTok := p.advance()
	numLit := &ast.NumberLiteral{Raw: numTok.Value, Base: numberBase(numTok.Value), Range: tokenToRange(numTok)}
	value := &ast.Value{Number: numLit, Range: tokenToRange(numTok)}

	if p.canStartUnits(degreeCtx) {
		units, err := p.parseUnitsSequence(1, degreeCtx)
		if err != nil {
			return nil, err
		}
		value.Units = units
		value.Range = spanRange(value.Range, units.Range)
	}
	return value, nil
}

func (p *Parser) parseCurrencyAtom() (ast.Node, error) {
	tok := p.advance()
	colon := strings.IndexByte(tok.Value, ':')
	if colon < 0 {
		return nil, &ParseError{Message: "currency symbol with no amount", Line: tok.Line, Column: tok.Column}
	}
	symbol, amount := tok.Value[:colon], tok.Value[colon+1:]
	numLit := &ast.NumberLiteral{Raw: amount, Base: 10, Range: tokenToRange(tok)}
	unitRange := tokenToRange(tok)
	units := &ast.Units{
		Terms: []*ast.UnitWithExponent{{
			Unit:     &ast.CurrencyUnit{Symbol: symbol, Range: unitRange},
			Exponent: 1,
			Sign:     1,
			Range:    unitRange,
		}},
		Range: unitRange,
	}

	value := &ast.Value{Number: numLit, Units: units, Range: unitRange}
	if p.canStartUnits(false) {
		more, err := p.parseUnitsSequence(1, false)
		if err != nil {
			return nil, err
		}
		units.Terms = append(units.Terms, more.Terms...)
		value.Range = spanRange(value.Range, more.Range)
	}
	return value, nil
}

func (p *Parser) parseIdentifierAtom() (ast.Node, error) {
	tok := p.currentToken()
	lower := strings.ToLower(tok.Value)

	if booleanWords[lower] {
		p.advance()
		return &ast.BooleanLiteral{Value: booleanValue(tok.Value), Range: tokenToRange(tok)}, nil
	}

	if p.peek(1).Type == lexer.LPAREN {
		return p.parseFunctionCall()
	}

	p.advance()
	if constants.IsKnownConstant(lower) {
		return &ast.Constant{Name: lower, Range: tokenToRange(tok)}, nil
	}
	return &ast.Variable{Name: tok.Value, Range: tokenToRange(tok)}, nil
}

func (p *Parser) parseFunctionCall() (ast.Node, error) {
	nameTok := p.advance()
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Node
	if p.currentToken().Type != lexer.RPAREN {
		for {
			arg, err := p.parseConversion()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.currentToken().Type != lexer.COMMA {
				break
			}
			p.advance()
		}
	}
	closeTok, err := p.expect(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Name: nameTok.Value, Args: args, Range: spanRange(tokenToRange(nameTok), tokenToRange(closeTok))}, nil
}

// maybeComposite greedily absorbs further unit-bearing Values into a
// CompositeValue, e.g. `5 ft 7 in` or `2h 15m`.
func (p *Parser) maybeComposite(first ast.Node) (ast.Node, error) {
	v, ok := first.(*ast.Value)
	if !ok || v.Units == nil {
		return first, nil
	}
	degreeCtx := unitsHasDegree(v.Units)
	parts := []*ast.Value{v}
	for p.currentToken().Type == lexer.NUMBER {
		save := p.pos
		next, err := p.parseNumberAtom(degreeCtx)
		if err != nil {
			p.pos = save
			break
		}
		nv, ok := next.(*ast.Value)
		if !ok || nv.Units == nil {
			p.pos = save
			break
		}
		parts = append(parts, nv)
	}
	if len(parts) == 1 {
		return v, nil
	}
	return &ast.CompositeValue{Parts: parts, Range: spanRange(parts[0].GetRange(), parts[len(parts)-1].GetRange())}, nil
}

func unitsHasDegree(u *ast.Units) bool {
	if u == nil || len(u.Terms) == 0 {
		return false
	}
	unit, ok := u.Terms[0].Unit.(*ast.Unit)
	return ok && unit.Symbol == "deg"
}

// canStartUnits reports whether the current token can begin a Units
// sequence: a currency symbol, a prime/double-prime/degree mark, or an
// identifier that isn't a reserved grammar word.
func (p *Parser) canStartUnits(degreeCtx bool) bool {
	tok := p.currentToken()
	switch tok.Type {
	case lexer.CURRENCY, lexer.PRIME, lexer.DPRIME, lexer.DEGREE:
		return true
	case lexer.IDENTIFIER:
		return !lexer.IsReserved(strings.ToLower(tok.Value))
	default:
		return false
	}
}

var unitJoinWords = map[string]bool{"per": true}

// parseUnitsSequence parses one or more UnitWithExponent terms joined by
// `*`, a space (plain juxtaposition), `/`, or `per`. sign is the
// multiplicative sign to start with (+1 in ordinary position).
func (p *Parser) parseUnitsSequence(sign int, degreeCtx bool) (*ast.Units, error) {
	var terms []*ast.UnitWithExponent
	first, err := p.parseUnitWithExponent(sign, degreeCtx)
	if err != nil {
		return nil, err
	}
	terms = append(terms, first)
	start := first.Range

	for {
		tok := p.currentToken()
		switch {
		case tok.Type == lexer.MULTIPLY:
			p.advance()
			term, err := p.parseUnitWithExponent(1, degreeCtx)
			if err != nil {
				return nil, err
			}
			terms = append(terms, term)
		case tok.Type == lexer.DIVIDE:
			p.advance()
			term, err := p.parseUnitWithExponent(-1, degreeCtx)
			if err != nil {
				return nil, err
			}
			terms = append(terms, term)
		case tok.Type == lexer.IDENTIFIER && unitJoinWords[strings.ToLower(tok.Value)]:
			p.advance()
			term, err := p.parseUnitWithExponent(-1, degreeCtx)
			if err != nil {
				return nil, err
			}
			terms = append(terms, term)
		case tok.Type == lexer.CURRENCY || tok.Type == lexer.PRIME || tok.Type == lexer.DPRIME || tok.Type == lexer.DEGREE ||
			(tok.Type == lexer.IDENTIFIER && !lexer.IsReserved(strings.ToLower(tok.Value))):
			term, err := p.parseUnitWithExponent(1, degreeCtx)
			if err != nil {
				return nil, err
			}
			terms = append(terms, term)
		default:
			return &ast.Units{Terms: terms, Range: spanRange(start, terms[len(terms)-1].Range)}, nil
		}
	}
}

func (p *Parser) parseUnitWithExponent(sign int, degreeCtx bool) (*ast.UnitWithExponent, error) {
	tok := p.currentToken()
	var unitNode ast.Node
	var startRange *ast.Range

	switch tok.Type {
	case lexer.CURRENCY:
		p.advance()
		unitNode = &ast.CurrencyUnit{Symbol: tok.Value, Range: tokenToRange(tok)}
		startRange = tokenToRange(tok)
	case lexer.DEGREE:
		p.advance()
		unitNode = &ast.Unit{Symbol: "deg", Range: tokenToRange(tok)}
		startRange = tokenToRange(tok)
	case lexer.PRIME:
		p.advance()
		symbol := "ft"
		if degreeCtx {
			symbol = "arcmin"
		}
		unitNode = &ast.Unit{Symbol: symbol, Range: tokenToRange(tok)}
		startRange = tokenToRange(tok)
	case lexer.DPRIME:
		p.advance()
		symbol := "in"
		if degreeCtx {
			symbol = "arcsec"
		}
		unitNode = &ast.Unit{Symbol: symbol, Range: tokenToRange(tok)}
		startRange = tokenToRange(tok)
	case lexer.IDENTIFIER:
		p.advance()
		unitNode = &ast.Unit{Symbol: tok.Value, Range: tokenToRange(tok)}
		startRange = tokenToRange(tok)
	default:
		return nil, &ParseError{Message: "expected unit, got " + tok.Type.String(), Line: tok.Line, Column: tok.Column}
	}

	exponent := 1
	endRange := startRange
	if p.currentToken().Type == lexer.EXPONENT || p.currentToken().Type == lexer.DEXPONENT {
		expTok := p.advance()
		negate := false
		if p.currentToken().Type == lexer.MINUS {
			negate = true
			p.advance()
		}
		numTok, err := p.expect(lexer.NUMBER)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(numTok.Value)
		if err != nil {
			return nil, &ParseError{Message: "invalid unit exponent", Line: numTok.Line, Column: numTok.Column}
		}
		if negate {
			n = -n
		}
		exponent = n
		_ = expTok
		endRange = tokenToRange(numTok)
	}

	return &ast.UnitWithExponent{Unit: unitNode, Exponent: exponent, Sign: sign, Range: spanRange(startRange, endRange)}, nil
}

func numberBase(raw string) int {
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "0x"):
		return 16
	case strings.HasPrefix(lower, "0b"):
		return 2
	case strings.HasPrefix(lower, "0o"):
		return 8
	default:
		return 10
	}
}
