package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/raymyers/fastmath/pkg/ntypes"
)

// Lexer tokenizes fastmath source code
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // next reading position
	ch      byte // current character
	line    int
	column  int
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) peekCharAt(offset int) byte {
	if l.readPos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.readPos+offset]
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	l.skipComments()
	l.skipWhitespace()

	tok := Token{Line: l.line, Column: l.column}

	switch l.ch {
	case 0:
		tok.Type = TokenEOF
		tok.Literal = ""
	case '+':
		tok = l.withAssign(tok, TokenPlus, TokenPlusAssign)
	case '-':
		if l.peekChar() == '>' {
			tok = l.twoChar(tok, TokenArrow)
		} else {
			tok = l.withAssign(tok, TokenMinus, TokenMinusAssign)
		}
	case '*':
		tok = l.withAssign(tok, TokenStar, TokenStarAssign)
	case '/':
		tok = l.withAssign(tok, TokenSlash, TokenSlashAssign)
	case '%':
		tok = l.withAssign(tok, TokenPercent, TokenPercentAssign)
	case '^':
		tok = l.withAssign(tok, TokenCaret, TokenXorAssign)
	case '=':
		tok = l.withAssign(tok, TokenAssign, TokenEq)
	case '!':
		tok = l.withAssign(tok, TokenNot, TokenNe)
	case '<':
		if l.peekChar() == '<' {
			if l.peekCharAt(1) == '=' {
				tok = l.threeChar(tok, TokenShlAssign)
			} else {
				tok = l.twoChar(tok, TokenShl)
			}
		} else {
			tok = l.withAssign(tok, TokenLt, TokenLe)
		}
	case '>':
		if l.peekChar() == '>' {
			if l.peekCharAt(1) == '=' {
				tok = l.threeChar(tok, TokenShrAssign)
			} else {
				tok = l.twoChar(tok, TokenShr)
			}
		} else {
			tok = l.withAssign(tok, TokenGt, TokenGe)
		}
	case '&':
		if l.peekChar() == '&' {
			tok = l.twoChar(tok, TokenAnd)
		} else {
			tok = l.withAssign(tok, TokenAmpersand, TokenAndAssign)
		}
	case '|':
		if l.peekChar() == '|' {
			tok = l.twoChar(tok, TokenOr)
		} else {
			tok = l.withAssign(tok, TokenPipe, TokenOrAssign)
		}
	case ':':
		if l.peekChar() == ':' {
			tok = l.twoChar(tok, TokenColonColon)
		} else {
			tok = l.newToken(TokenColon, l.ch)
		}
	case '.':
		if l.peekChar() == '.' {
			if l.peekCharAt(1) == '=' {
				tok = l.threeChar(tok, TokenDotDotAssign)
			} else {
				tok = l.twoChar(tok, TokenDotDot)
			}
		} else {
			tok = l.newToken(TokenDot, l.ch)
		}
	case '(':
		tok = l.newToken(TokenLParen, l.ch)
	case ')':
		tok = l.newToken(TokenRParen, l.ch)
	case '{':
		tok = l.newToken(TokenLBrace, l.ch)
	case '}':
		tok = l.newToken(TokenRBrace, l.ch)
	case '[':
		tok = l.newToken(TokenLBracket, l.ch)
	case ']':
		tok = l.newToken(TokenRBracket, l.ch)
	case ';':
		tok = l.newToken(TokenSemicolon, l.ch)
	case ',':
		tok = l.newToken(TokenComma, l.ch)
	case '#':
		tok = l.newToken(TokenHash, l.ch)
	default:
		if isLetter(l.ch) {
			ident, ok := l.readIdentifier()
			if !ok {
				tok.Type = TokenIllegal
				tok.Literal = ident
				return tok
			}
			tok.Literal = ident
			tok.Type = LookupIdent(tok.Literal)
			return tok
		} else if isDigit(l.ch) {
			return l.readNumber(tok)
		} else {
			tok = l.newToken(TokenIllegal, l.ch)
		}
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(tokenType TokenType, ch byte) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: l.line, Column: l.column}
}

// withAssign lexes a one-character operator that turns into a different
// token when followed by '='.
func (l *Lexer) withAssign(tok Token, plain, assign TokenType) Token {
	if l.peekChar() == '=' {
		return l.twoChar(tok, assign)
	}
	return l.newToken(plain, l.ch)
}

func (l *Lexer) twoChar(tok Token, t TokenType) Token {
	start := l.pos
	l.readChar()
	tok.Type = t
	tok.Literal = l.input[start : l.pos+1]
	return tok
}

func (l *Lexer) threeChar(tok Token, t TokenType) Token {
	start := l.pos
	l.readChar()
	l.readChar()
	tok.Type = t
	tok.Literal = l.input[start : l.pos+1]
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComments() {
	for l.ch == '/' {
		if l.peekChar() == '/' {
			// Single-line comment
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			l.skipWhitespace()
		} else if l.peekChar() == '*' {
			// Multi-line comment
			l.readChar() // consume /
			l.readChar() // consume *
			for {
				if l.ch == 0 {
					break
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar() // consume *
					l.readChar() // consume /
					break
				}
				l.readChar()
			}
			l.skipWhitespace()
		} else {
			break
		}
	}
}

// readIdentifier reads an identifier and returns it in NFC form, so that
// composed and decomposed spellings name the same binding. Non-ASCII bytes
// are collected and then validated as letters, digits or combining marks.
func (l *Lexer) readIdentifier() (string, bool) {
	pos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	raw := l.input[pos:l.pos]
	if !utf8.ValidString(raw) {
		return raw, false
	}
	for i, r := range raw {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r))) {
			continue
		}
		return raw, false
	}
	return norm.NFC.String(raw), true
}

// readNumber reads an integer or float literal with an optional type
// suffix. Underscore separators are dropped.
func (l *Lexer) readNumber(tok Token) Token {
	var digits strings.Builder
	tok.Type = TokenInt
	l.readDigits(&digits)

	// A '.' followed by a digit starts a fraction; "0..n" is a range.
	if l.ch == '.' && isDigit(l.peekChar()) {
		tok.Type = TokenFloat
		digits.WriteByte('.')
		l.readChar()
		l.readDigits(&digits)
	}
	if (l.ch == 'e' || l.ch == 'E') && (isDigit(l.peekChar()) ||
		((l.peekChar() == '+' || l.peekChar() == '-') && isDigit(l.peekCharAt(1)))) {
		tok.Type = TokenFloat
		digits.WriteByte('e')
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			digits.WriteByte(l.ch)
			l.readChar()
		}
		l.readDigits(&digits)
	}
	tok.Literal = digits.String()

	if isLetter(l.ch) {
		suffix, ok := l.readIdentifier()
		tok.Suffix = suffix
		if !ok || !ntypes.IsNumericSuffix(suffix) {
			tok.Type = TokenIllegal
			tok.Literal += suffix
			return tok
		}
		if suffix == "f32" || suffix == "f64" {
			tok.Type = TokenFloat
		} else if tok.Type == TokenFloat {
			// 1.5u8
			tok.Type = TokenIllegal
			tok.Literal += suffix
		}
	}
	return tok
}

func (l *Lexer) readDigits(sb *strings.Builder) {
	for isDigit(l.ch) || l.ch == '_' {
		if l.ch != '_' {
			sb.WriteByte(l.ch)
		}
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch >= utf8.RuneSelf
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
