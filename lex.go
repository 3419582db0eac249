package symexpr

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// lexer scans an expression source string into tokens. pos indexes bytes
// into src; col counts runes from 1 for error positions.
type lexer struct {
	src string
	pos int
	col int
	// minusIsUnary is true when a - at the current position negates its
	// operand rather than subtracting. It holds at the start of input and
	// after any operator other than postfix !, an open bracket, or a
	// separator.
	minusIsUnary bool
}

// lexAll scans src to completion. On error the tokens scanned so far are
// discarded.
func lexAll(src string) ([]token, error) {
	l := lexer{src: src, minusIsUnary: true}
	var toks []token
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		if t.kind == tokenNone {
			return toks, nil
		}
		toks = append(toks, t)
	}
}

func (l *lexer) readRune() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += sz
	l.col++
	return r, true
}

func (l *lexer) unreadRune() {
	_, sz := utf8.DecodeLastRuneInString(l.src[:l.pos])
	l.pos -= sz
	l.col--
}

const operatorRunes = "!~^*/+-"

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

// next scans the next token. At the end of input it returns a token with
// kind tokenNone and no error.
func (l *lexer) next() (token, error) {
	r, ok := l.readRune()
	for ok && isSpace(r) {
		r, ok = l.readRune()
	}
	if !ok {
		return token{}, nil
	}
	col := l.col
	switch {
	case isDigit(r) || r == '.':
		l.unreadRune()
		return l.scanNum()
	case isIdentStart(r):
		l.unreadRune()
		return l.scanIdent()
	case r == '(':
		l.minusIsUnary = true
		return token{kind: tokenOpen, text: "(", pos: col}, nil
	case r == ')':
		l.minusIsUnary = false
		return token{kind: tokenClose, text: ")", pos: col}, nil
	case r == ',':
		l.minusIsUnary = true
		return token{kind: tokenSep, text: ",", pos: col}, nil
	case strings.ContainsRune(operatorRunes, r):
		text := string(r)
		if r == '-' && l.minusIsUnary {
			text = "~"
		}
		// A postfix ! leaves the scanner in operand position, so a -
		// following it subtracts.
		l.minusIsUnary = r != '!'
		return token{kind: tokenOp, text: text, pos: col}, nil
	}
	return token{}, &LexError{Text: string(r), Kind: "character", Col: col}
}

// scanNum accepts an integer or decimal literal: digits with at most one
// dot before the exponent, an optional e or E followed by an optional sign
// and at least one digit.
func (l *lexer) scanNum() (token, error) {
	start := l.pos
	col := l.col + 1
	var dig, dot, exp, expDig bool
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		switch {
		case isDigit(r):
			dig = true
			if exp {
				expDig = true
			}
			continue
		case r == '.' && !dot && !exp:
			dot = true
			continue
		case (r == 'e' || r == 'E') && dig && !exp:
			exp = true
			continue
		case (r == '+' || r == '-') && exp && !expDig && (l.src[l.pos-2] == 'e' || l.src[l.pos-2] == 'E'):
			continue
		}
		if isSpace(r) || strings.ContainsRune(operatorRunes+"(),", r) {
			l.unreadRune()
			break
		}
		return token{}, &LexError{Text: l.src[start:l.pos], Kind: "number", Col: col}
	}
	text := l.src[start:l.pos]
	if !dig || (exp && !expDig) {
		return token{}, &LexError{Text: text, Kind: "number", Col: col}
	}
	l.minusIsUnary = false
	if !dot && !exp {
		v, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return token{kind: tokenInt, text: text, pos: col, ival: v}, nil
		}
		// Out of int64 range. Fall through to the float representation.
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, &LexError{Text: text, Kind: "number", Col: col}
	}
	return token{kind: tokenFloat, text: text, pos: col, fval: v}, nil
}

func (l *lexer) scanIdent() (token, error) {
	start := l.pos
	col := l.col + 1
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if !isIdentCont(r) {
			l.unreadRune()
			break
		}
	}
	l.minusIsUnary = false
	return token{kind: tokenIdent, text: l.src[start:l.pos], pos: col}, nil
}
