// Package parser turns one line's token stream into a typed notecalc AST
// node, recording a ParseError against the line rather than halting the
// document on a bad line.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/lexer"
)

// ParseError represents a parse error.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Line, e.Column)
}

func tokenToRange(token lexer.Token) *ast.Range {
	start := ast.Position{Line: token.Line, Column: token.Column}
	end := ast.Position{Line: token.Line, Column: token.Column + len([]rune(token.Value))}
	return &ast.Range{Start: start, End: end}
}

func spanRange(from, to *ast.Range) *ast.Range {
	if from == nil {
		return to
	}
	if to == nil {
		return from
	}
	return &ast.Range{Start: from.Start, End: to.End}
}

// Parser parses notecalc tokens into an AST.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser creates a new parser from tokens.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

func (p *Parser) currentToken() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) lexer.Token {
	pos := p.pos + offset
	if pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[pos]
}

func (p *Parser) advance() lexer.Token {
	token := p.currentToken()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return token
}

func (p *Parser) expect(tokenType lexer.TokenType) (lexer.Token, error) {
	token := p.currentToken()
	if token.Type != tokenType {
		return token, &ParseError{Message: fmt.Sprintf("expected %s, got %s", tokenType, token.Type), Line: token.Line, Column: token.Column}
	}
	return p.advance(), nil
}

// adjacent reports whether b immediately follows a (no whitespace between),
// used to disambiguate date-literal hyphens from subtraction.
func adjacent(a, b lexer.Token) bool {
	return a.Line == b.Line && b.Column == a.Column+len([]rune(a.Value))
}

// ParseLine parses one line of source into a single line-level AST node:
// Heading, EmptyLine, VariableAssignment, or ExpressionLine. Callers that
// want a Markdown/PlainText fallback on error or on an undefined-identifier
// expression handle that themselves (see the classifier package).
func ParseLine(source string, lineNo int) (ast.Node, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		if lexErr, ok := err.(*lexer.LexerError); ok {
			return nil, &ParseError{Message: lexErr.Message, Line: lineNo, Column: lexErr.Column}
		}
		return nil, err
	}
	for i := range tokens {
		tokens[i].Line = lineNo
	}

	p := NewParser(tokens)

	if p.currentToken().Type == lexer.HASH {
		hashTok := p.advance()
		level, err := strconv.Atoi(hashTok.Value)
		if err != nil || level < 1 {
			level = 1
		}
		text := strings.TrimSpace(remainingText(source, hashTok, level))
		return &ast.Heading{Level: level, Text: text, Range: tokenToRange(hashTok)}, nil
	}

	contentTokens := 0
	for _, t := range tokens {
		if t.Type != lexer.NEWLINE && t.Type != lexer.EOF {
			contentTokens++
		}
	}
	if contentTokens == 0 {
		return &ast.EmptyLine{}, nil
	}

	node, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	cur := p.currentToken()
	if cur.Type != lexer.NEWLINE && cur.Type != lexer.EOF {
		return nil, &ParseError{Message: fmt.Sprintf("unexpected token after statement: %s", cur.Type), Line: cur.Line, Column: cur.Column}
	}
	return node, nil
}

// remainingText recovers the heading text after the marker; simplest robust
// approach given the lexer discards the separating space.
func remainingText(source string, hashTok lexer.Token, level int) string {
	runes := []rune(source)
	idx := hashTok.Column - 1 + level
	if idx < 0 || idx >= len(runes) {
		return ""
	}
	return string(runes[idx:])
}

// parseStatement parses a VariableAssignment or ExpressionLine.
func (p *Parser) parseStatement() (ast.Node, error) {
	current := p.currentToken()
	next := p.peek(1)

	if current.Type == lexer.IDENTIFIER && next.Type == lexer.ASSIGN {
		nameTok := p.advance()
		p.advance() // consume '='
		expr, err := p.parseConversion()
		if err != nil {
			return nil, err
		}
		return &ast.VariableAssignment{Name: nameTok.Value, Expr: expr, Range: tokenToRange(nameTok)}, nil
	}

	expr, err := p.parseConversion()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionLine{Expr: expr, Range: expr.GetRange()}, nil
}

// ---- precedence ladder: conversion < conditional < logical < comparison < additive < multiplicative < unary < power < postfix < primary ----

// conversionKeywords are the conversion-operator spellings the parser
// recognizes as infix words ("->" is handled separately as its own
// token). "in" is deliberately excluded: it collides with the inches
// unit symbol in composite values like `5 ft 7 in`.
var conversionKeywords = map[string]bool{"to": true, "as": true}

func (p *Parser) parseConversion() (ast.Node, error) {
	left, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	for {
		cur := p.currentToken()
		if cur.Type == lexer.ARROW || (cur.Type == lexer.IDENTIFIER && conversionKeywords[strings.ToLower(cur.Value)]) {
			opTok := p.advance()
			target, err := p.parseConversionTarget()
			if err != nil {
				return nil, err
			}
			left = &ast.Conversion{Expr: left, Operator: opTok.Value, Target: target, Range: spanRange(left.GetRange(), target.GetRange())}
			continue
		}
		break
	}
	return left, nil
}

func (p *Parser) parseConditional() (ast.Node, error) {
	if p.currentToken().Type == lexer.IDENTIFIER && strings.EqualFold(p.currentToken().Value, "if") {
		ifTok := p.advance()
		cond, err := p.parseLogicalOr()
		if err != nil {
			return nil, err
		}
		if !(p.currentToken().Type == lexer.IDENTIFIER && strings.EqualFold(p.currentToken().Value, "then")) {
			return nil, &ParseError{Message: "expected 'then'", Line: p.currentToken().Line, Column: p.currentToken().Column}
		}
		p.advance()
		thenExpr, err := p.parseLogicalOr()
		if err != nil {
			return nil, err
		}
		if !(p.currentToken().Type == lexer.IDENTIFIER && strings.EqualFold(p.currentToken().Value, "else")) {
			return nil, &ParseError{Message: "expected 'else'", Line: p.currentToken().Line, Column: p.currentToken().Column}
		}
		p.advance()
		elseExpr, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalExpr{Cond: cond, Then: thenExpr, Else: elseExpr, Range: tokenToRange(ifTok)}, nil
	}
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Node, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.currentToken().Type == lexer.IDENTIFIER && strings.EqualFold(p.currentToken().Value, "or") {
		opTok := p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Operator: "or", Left: left, Right: right, Range: tokenToRange(opTok)}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Node, error) {
	left, err := p.parseLogicalNot()
	if err != nil {
		return nil, err
	}
	for p.currentToken().Type == lexer.IDENTIFIER && strings.EqualFold(p.currentToken().Value, "and") {
		opTok := p.advance()
		right, err := p.parseLogicalNot()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Operator: "and", Left: left, Right: right, Range: tokenToRange(opTok)}
	}
	return left, nil
}

func (p *Parser) parseLogicalNot() (ast.Node, error) {
	if p.currentToken().Type == lexer.IDENTIFIER && strings.EqualFold(p.currentToken().Value, "not") {
		opTok := p.advance()
		operand, err := p.parseLogicalNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Operator: "not", Operand: operand, Range: tokenToRange(opTok)}, nil
	}
	return p.parseComparison()
}

var comparisonOps = map[lexer.TokenType]bool{
	lexer.GREATER_THAN: true, lexer.LESS_THAN: true,
	lexer.GREATER_EQUAL: true, lexer.LESS_EQUAL: true,
	lexer.EQUAL: true, lexer.NOT_EQUAL: true,
}

func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for comparisonOps[p.currentToken().Type] {
		opTok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Operator: opTok.Value, Left: left, Right: right, Range: tokenToRange(opTok)}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.currentToken().Type == lexer.PLUS || p.currentToken().Type == lexer.MINUS {
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Operator: opTok.Value, Left: left, Right: right, Range: tokenToRange(opTok)}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tt := p.currentToken().Type
		if tt != lexer.MULTIPLY && tt != lexer.DIVIDE {
			break
		}
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Operator: opTok.Value, Left: left, Right: right, Range: tokenToRange(opTok)}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Node, error) {
	tok := p.currentToken()
	if tok.Type == lexer.MINUS || tok.Type == lexer.PLUS {
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Operator: opTok.Value, Operand: operand, Range: tokenToRange(opTok)}, nil
	}
	return p.parsePower()
}

func (p *Parser) parsePower() (ast.Node, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.currentToken().Type == lexer.EXPONENT || p.currentToken().Type == lexer.DEXPONENT {
		opTok := p.advance()
		right, err := p.parseUnary() // right-associative, allows a leading sign on the exponent
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Operator: "^", Left: left, Right: right, Range: tokenToRange(opTok)}, nil
	}
	return left, nil
}

// asPercentage wraps a NumberLiteral operand as a PercentageLiteral, or
// falls back to a generic PostfixExpression for anything more complex
// (e.g. `(a + b)%`).
func asPercentage(operand ast.Node, permille bool, tok lexer.Token) ast.Node {
	if v, ok := operand.(*ast.Value); ok && v.Units == nil {
		operand = v.Number
	}
	if numLit, ok := operand.(*ast.NumberLiteral); ok {
		return &ast.PercentageLiteral{Raw: numLit.Raw, Permille: permille, Range: spanRange(numLit.GetRange(), tokenToRange(tok))}
	}
	operator := "%"
	if permille {
		operator = "‰"
	}
	return &ast.PostfixExpression{Operator: operator, Operand: operand, Range: tokenToRange(tok)}
}

func (p *Parser) parsePostfix() (ast.Node, error) {
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.currentToken()
		switch tok.Type {
		case lexer.PERCENT:
			p.advance()
			operand = asPercentage(operand, false, tok)
		case lexer.PERMILLE:
			p.advance()
			operand = asPercentage(operand, true, tok)
		case lexer.BANG:
			p.advance()
			operand = &ast.PostfixExpression{Operator: "!", Operand: operand, Range: tokenToRange(tok)}
		default:
			return operand, nil
		}
	}
}
