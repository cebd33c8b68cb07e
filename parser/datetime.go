package parser

import (
	"strconv"
	"strings"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/lexer"
	"github.com/notecalc/notecalc/timezone"
)

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var weekdayNames = map[string]bool{
	"mon": true, "monday": true,
	"tue": true, "tues": true, "tuesday": true,
	"wed": true, "wednesday": true,
	"thu": true, "thur": true, "thurs": true, "thursday": true,
	"fri": true, "friday": true,
	"sat": true, "saturday": true,
	"sun": true, "sunday": true,
}

// tryDateTimeLiteral attempts to recognize a calendar date and/or
// clock-time shape at the current position without consuming tokens on
// failure. It is tried before ordinary number parsing so that "2026-07-31"
// lexes as a DateLiteral rather than "2026 MINUS 07 MINUS 31".
func (p *Parser) tryDateTimeLiteral() (ast.Node, bool, error) {
	save := p.pos

	date := p.tryDateLiteral()
	if date == nil {
		p.pos = save
	} else {
		// an optional weekday name between date and time, e.g. "1970-01-01 Thu 19:00"
		if p.currentToken().Type == lexer.IDENTIFIER && weekdayNames[strings.ToLower(p.currentToken().Value)] {
			p.advance()
		}
	}

	timeLit := p.tryTimeLiteral()

	if date == nil && timeLit == nil {
		p.pos = save
		return nil, false, nil
	}
	if date != nil && timeLit == nil {
		return date, true, nil
	}
	if date == nil && timeLit != nil {
		return timeLit, true, nil
	}

	zone := p.tryParseZoneSuffix()
	rng := spanRange(date.GetRange(), timeLit.GetRange())
	return &ast.DateTimeLiteral{Date: date, Time: timeLit, Zone: zone, Range: rng}, true, nil
}

// tryDateLiteral matches "YYYY-MM-DD" (hyphen form, requiring the tokens to
// be written with no surrounding whitespace so "1970 - 01 - 01" subtraction
// is never mistaken for a date) or "YYYY MMM DD" (space-separated, month by
// name).
func (p *Parser) tryDateLiteral() *ast.DateLiteral {
	save := p.pos
	yearTok := p.currentToken()
	if yearTok.Type != lexer.NUMBER || !isPlainInt(yearTok.Value) || len(yearTok.Value) != 4 {
		return nil
	}

	// hyphen form
	if p.peek(1).Type == lexer.MINUS && adjacent(yearTok, p.peek(1)) {
		monthTok := p.peek(2)
		if monthTok.Type == lexer.NUMBER && isPlainInt(monthTok.Value) && len(monthTok.Value) <= 2 && adjacent(p.peek(1), monthTok) {
			dashTok2 := p.peek(3)
			dayTok := p.peek(4)
			if dashTok2.Type == lexer.MINUS && adjacent(monthTok, dashTok2) &&
				dayTok.Type == lexer.NUMBER && isPlainInt(dayTok.Value) && len(dayTok.Value) <= 2 && adjacent(dashTok2, dayTok) {
				year, _ := strconv.Atoi(yearTok.Value)
				month, _ := strconv.Atoi(monthTok.Value)
				day, _ := strconv.Atoi(dayTok.Value)
				p.pos += 5
				return &ast.DateLiteral{Year: year, Month: month, Day: day, Range: spanRange(tokenToRange(yearTok), tokenToRange(dayTok))}
			}
		}
	}

	// "YYYY Mon DD" form
	monthIdent := p.peek(1)
	if monthIdent.Type == lexer.IDENTIFIER {
		if month, ok := monthNames[strings.ToLower(monthIdent.Value)]; ok {
			dayTok := p.peek(2)
			if dayTok.Type == lexer.NUMBER && isPlainInt(dayTok.Value) && len(dayTok.Value) <= 2 {
				year, _ := strconv.Atoi(yearTok.Value)
				day, _ := strconv.Atoi(dayTok.Value)
				p.pos += 3
				return &ast.DateLiteral{Year: year, Month: month, Day: day, Range: spanRange(tokenToRange(yearTok), tokenToRange(dayTok))}
			}
		}
	}

	p.pos = save
	return nil
}

// tryTimeLiteral matches "HH:MM[:SS[.fff]]".
func (p *Parser) tryTimeLiteral() *ast.TimeLiteral {
	save := p.pos
	hourTok := p.currentToken()
	if hourTok.Type != lexer.NUMBER || !isPlainInt(hourTok.Value) || len(hourTok.Value) > 2 {
		return nil
	}
	if p.peek(1).Type != lexer.COLON {
		return nil
	}
	minuteTok := p.peek(2)
	if minuteTok.Type != lexer.NUMBER || !isPlainInt(minuteTok.Value) || len(minuteTok.Value) > 2 {
		return nil
	}
	hour, _ := strconv.Atoi(hourTok.Value)
	minute, _ := strconv.Atoi(minuteTok.Value)
	if hour > 23 || minute > 59 {
		p.pos = save
		return nil
	}
	p.pos += 3
	end := tokenToRange(minuteTok)

	second, nanos := 0, 0
	if p.currentToken().Type == lexer.COLON && p.peek(1).Type == lexer.NUMBER {
		secTok := p.peek(1)
		secStr := secTok.Value
		whole := secStr
		if dot := strings.IndexByte(secStr, '.'); dot >= 0 {
			whole = secStr[:dot]
			frac := secStr[dot+1:]
			for len(frac) < 9 {
				frac += "0"
			}
			nanos, _ = strconv.Atoi(frac[:9])
		}
		if s, err := strconv.Atoi(whole); err == nil && s <= 60 {
			second = s
			p.pos += 2
			end = tokenToRange(secTok)
		}
	}

	return &ast.TimeLiteral{Hour: hour, Minute: minute, Second: second, Nanosecond: nanos, Range: spanRange(tokenToRange(hourTok), end)}
}

func isPlainInt(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// tryParseZoneSuffix recognizes a zone suffix following a date/time
// literal: "Z", a bare numeric UTC offset ("+05:00"), "UTC"/"GMT" optionally
// combined with an offset ("UTC+5"), an IANA path name ("America/New_York"),
// or a known city alias.
func (p *Parser) tryParseZoneSuffix() string {
	tok := p.currentToken()
	switch tok.Type {
	case lexer.PLUS, lexer.MINUS:
		return p.consumeOffsetSuffix()
	case lexer.IDENTIFIER:
		upper := strings.ToUpper(tok.Value)
		if upper == "Z" {
			p.advance()
			return "Z"
		}
		if upper == "UTC" || upper == "GMT" {
			save := p.pos
			p.advance()
			if off := p.consumeOffsetSuffix(); off != "" {
				return off
			}
			p.pos = save
			p.advance()
			return upper
		}
		if p.peek(1).Type == lexer.DIVIDE {
			save := p.pos
			name := p.advance().Value
			ok := true
			for p.currentToken().Type == lexer.DIVIDE {
				p.advance()
				if p.currentToken().Type != lexer.IDENTIFIER {
					ok = false
					break
				}
				name += "/" + p.advance().Value
			}
			if ok {
				return name
			}
			p.pos = save
			return ""
		}
		if timezone.KnownAlias(tok.Value) {
			p.advance()
			return tok.Value
		}
		if p.peek(1).Type == lexer.IDENTIFIER {
			twoWord := tok.Value + " " + p.peek(1).Value
			if timezone.KnownAlias(twoWord) {
				p.advance()
				p.advance()
				return twoWord
			}
		}
		return ""
	}
	return ""
}

func (p *Parser) consumeOffsetSuffix() string {
	tok := p.currentToken()
	if tok.Type != lexer.PLUS && tok.Type != lexer.MINUS {
		return ""
	}
	save := p.pos
	sign := tok.Value
	p.advance()
	numTok := p.currentToken()
	if numTok.Type != lexer.NUMBER || !isPlainInt(numTok.Value) {
		p.pos = save
		return ""
	}
	p.advance()
	hours := numTok.Value
	if len(hours) == 1 {
		hours = "0" + hours
	}
	offset := sign + hours
	if p.currentToken().Type == lexer.COLON {
		p.advance()
		if p.currentToken().Type == lexer.NUMBER {
			offset += ":" + p.advance().Value
		}
	}
	return offset
}
