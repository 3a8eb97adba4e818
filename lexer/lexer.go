// ==============================================================================================
// FILE: lexer/lexer.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: The single-pass GS tokenizer. There is no separate token
//          package: literals (Int/Str/Blk) and the two lexical-only
//          markers (Var/Assign) ARE object.Value — GS has no AST, so the
//          lexer's output is already the unit the evaluator consumes.
// ==============================================================================================

package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/lucarin91/golfscript-go/object"
)

// operatorChars is the closed set of one-character operator names.
const operatorChars = "+-!@$*/%|&^\\;<>=.?()[]~`,"

// Lexer scans a single block/top-level level of GS source. Nested block
// literals are handled by recursive calls to lexBlockBody.
type Lexer struct {
	input        []rune
	position     int  // index of ch
	readPosition int  // index of the next rune to read
	ch           rune // current rune, 0 at EOF
}

func newLexer(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// Lex tokenizes a complete GS source string, returning a flat token
// sequence or a parse error.
func Lex(input string) ([]object.Value, error) {
	l := newLexer(input)
	tokens, err := l.lexUntil(0)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// lexUntil lexes tokens until EOF (closer == 0) or until the closing rune
// of a block (closer == '}') is consumed. It is the shared body of both
// top-level lexing and nested block lexing.
func (l *Lexer) lexUntil(closer rune) ([]object.Value, error) {
	var tokens []object.Value
	for {
		if closer == '}' {
			for unicode.IsSpace(l.ch) {
				l.readChar()
			}
			if l.ch == '}' {
				l.readChar()
				return tokens, nil
			}
			if l.ch == 0 {
				return nil, errors.New("parse error: eof while scanning for '}'")
			}
		}

		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			if closer == '}' {
				return nil, errors.New("parse error: eof while scanning for '}'")
			}
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// next scans and returns a single token. ok is false only at EOF (with a
// nil error); comments are skipped internally and never surface a token.
func (l *Lexer) next() (object.Value, bool, error) {
	for {
		switch {
		case l.ch == 0:
			return nil, false, nil

		case unicode.IsSpace(l.ch):
			l.readChar()
			continue

		case l.ch == '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue

		case l.ch == '"':
			s, err := l.lexString()
			if err != nil {
				return nil, false, err
			}
			return object.Str{Value: s}, true, nil

		case l.ch == '{':
			l.readChar()
			inner, err := l.lexUntil('}')
			if err != nil {
				return nil, false, err
			}
			return object.Blk{Tokens: inner}, true, nil

		case unicode.IsDigit(l.ch):
			return l.lexNumber(), true, nil

		case l.ch == '-' && unicode.IsDigit(l.peekChar()):
			l.readChar()
			n := l.lexNumber().(object.Int)
			return object.Int{Value: -n.Value}, true, nil

		case l.ch == ':':
			l.readChar()
			name := l.lexName()
			if name == "" {
				return nil, false, errors.New("parse error: empty variable name after ':'")
			}
			return object.Assign{Name: name}, true, nil

		default:
			return object.Var{Name: l.lexName()}, true, nil
		}
	}
}

// lexName scans a variable or operator name: a lone operator character,
// or a run of alphanumeric/'_' runes.
func (l *Lexer) lexName() string {
	if strings.ContainsRune(operatorChars, l.ch) {
		ch := l.ch
		l.readChar()
		return string(ch)
	}

	var b strings.Builder
	for isIdentRune(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	return b.String()
}

func isIdentRune(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

// lexNumber scans a greedy run of decimal digits.
func (l *Lexer) lexNumber() object.Value {
	var b strings.Builder
	for unicode.IsDigit(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	n, _ := strconv.ParseInt(b.String(), 10, 64)
	return object.Int{Value: n}
}

// lexString scans a double-quoted string literal. `\` escapes the next
// code point literally during the scan; afterwards the two-character
// sequences `\\` -> `\` and `\"` -> `"` are applied to the result, in
// that order.
func (l *Lexer) lexString() (string, error) {
	l.readChar() // consume opening '"'
	var b strings.Builder
	for {
		switch l.ch {
		case '"':
			l.readChar()
			s := b.String()
			s = strings.ReplaceAll(s, `\\`, `\`)
			s = strings.ReplaceAll(s, `\"`, `"`)
			return s, nil
		case 0:
			return "", errors.New("parse error: eof while scanning string literal")
		case '\\':
			l.readChar()
			if l.ch == 0 {
				return "", errors.New("parse error: invalid escape sequence")
			}
			b.WriteRune(l.ch)
			l.readChar()
		default:
			b.WriteRune(l.ch)
			l.readChar()
		}
	}
}
