package lexer

import "testing"

type expectedToken struct {
	expectedType    TokenType
	expectedLiteral string
}

func checkTokens(t *testing.T, input string, tests []expectedToken) {
	t.Helper()
	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken(t *testing.T) {
	input := `fn main() -> i32 { return 42; }`

	checkTokens(t, input, []expectedToken{
		{TokenFn, "fn"},
		{TokenIdent, "main"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenArrow, "->"},
		{TokenIdent, "i32"},
		{TokenLBrace, "{"},
		{TokenReturn, "return"},
		{TokenInt, "42"},
		{TokenSemicolon, ";"},
		{TokenRBrace, "}"},
		{TokenEOF, ""},
	})
}

func TestOperators(t *testing.T) {
	input := `+ - * / % = == != < <= > >= && || ! & | ^ << >>`

	checkTokens(t, input, []expectedToken{
		{TokenPlus, "+"},
		{TokenMinus, "-"},
		{TokenStar, "*"},
		{TokenSlash, "/"},
		{TokenPercent, "%"},
		{TokenAssign, "="},
		{TokenEq, "=="},
		{TokenNe, "!="},
		{TokenLt, "<"},
		{TokenLe, "<="},
		{TokenGt, ">"},
		{TokenGe, ">="},
		{TokenAnd, "&&"},
		{TokenOr, "||"},
		{TokenNot, "!"},
		{TokenAmpersand, "&"},
		{TokenPipe, "|"},
		{TokenCaret, "^"},
		{TokenShl, "<<"},
		{TokenShr, ">>"},
		{TokenEOF, ""},
	})
}

func TestCompoundAssign(t *testing.T) {
	input := `+= -= *= /= %= <<= >>= &= |= ^=`

	checkTokens(t, input, []expectedToken{
		{TokenPlusAssign, "+="},
		{TokenMinusAssign, "-="},
		{TokenStarAssign, "*="},
		{TokenSlashAssign, "/="},
		{TokenPercentAssign, "%="},
		{TokenShlAssign, "<<="},
		{TokenShrAssign, ">>="},
		{TokenAndAssign, "&="},
		{TokenOrAssign, "|="},
		{TokenXorAssign, "^="},
		{TokenEOF, ""},
	})
}

func TestDelimiters(t *testing.T) {
	input := `#[fast] Dispatch::fast_add(a.x, v[0]) 0..n 1..=m fast!`

	checkTokens(t, input, []expectedToken{
		{TokenHash, "#"},
		{TokenLBracket, "["},
		{TokenIdent, "fast"},
		{TokenRBracket, "]"},
		{TokenIdent, "Dispatch"},
		{TokenColonColon, "::"},
		{TokenIdent, "fast_add"},
		{TokenLParen, "("},
		{TokenIdent, "a"},
		{TokenDot, "."},
		{TokenIdent, "x"},
		{TokenComma, ","},
		{TokenIdent, "v"},
		{TokenLBracket, "["},
		{TokenInt, "0"},
		{TokenRBracket, "]"},
		{TokenRParen, ")"},
		{TokenInt, "0"},
		{TokenDotDot, ".."},
		{TokenIdent, "n"},
		{TokenInt, "1"},
		{TokenDotDotAssign, "..="},
		{TokenIdent, "m"},
		{TokenIdent, "fast"},
		{TokenNot, "!"},
		{TokenEOF, ""},
	})
}

func TestComments(t *testing.T) {
	input := `let // comment
x /* block
comment */ ;`

	checkTokens(t, input, []expectedToken{
		{TokenLet, "let"},
		{TokenIdent, "x"},
		{TokenSemicolon, ";"},
		{TokenEOF, ""},
	})
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input   string
		typ     TokenType
		literal string
		suffix  string
	}{
		{"42", TokenInt, "42", ""},
		{"1_000_000", TokenInt, "1000000", ""},
		{"7u16", TokenInt, "7", "u16"},
		{"255_u8", TokenInt, "255", "u8"},
		{"3i128", TokenInt, "3", "i128"},
		{"1.5", TokenFloat, "1.5", ""},
		{"2.0f32", TokenFloat, "2.0", "f32"},
		{"3f64", TokenFloat, "3", "f64"},
		{"1e3", TokenFloat, "1e3", ""},
		{"2.5e-2", TokenFloat, "2.5e-2", ""},
		{"4xyz", TokenIllegal, "4xyz", "xyz"},
		{"1.5u8", TokenIllegal, "1.5u8", "u8"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := New(tt.input).NextToken()
			if tok.Type != tt.typ {
				t.Errorf("type: expected %s, got %s", tt.typ, tok.Type)
			}
			if tok.Literal != tt.literal {
				t.Errorf("literal: expected %q, got %q", tt.literal, tok.Literal)
			}
			if tok.Suffix != tt.suffix {
				t.Errorf("suffix: expected %q, got %q", tt.suffix, tok.Suffix)
			}
		})
	}
}

func TestIdentifierNormalization(t *testing.T) {
	// "e" followed by U+0301 COMBINING ACUTE ACCENT composes to U+00E9.
	decomposed := "cafe\u0301"
	composed := "caf\u00e9"

	tok := New(decomposed).NextToken()
	if tok.Type != TokenIdent {
		t.Fatalf("expected IDENT, got %s", tok.Type)
	}
	if tok.Literal != composed {
		t.Errorf("expected %q, got %q", composed, tok.Literal)
	}
}

func TestIllegalIdentifier(t *testing.T) {
	// U+2603 SNOWMAN is not a letter
	tok := New("\u2603").NextToken()
	if tok.Type != TokenIllegal {
		t.Errorf("expected ILLEGAL, got %s", tok.Type)
	}
}

func TestPositions(t *testing.T) {
	l := New("let x\n  = 1;")
	want := [][2]int{{1, 1}, {1, 5}, {2, 3}, {2, 5}, {2, 6}}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Line != w[0] || tok.Column != w[1] {
			t.Errorf("token %d (%q): expected %d:%d, got %d:%d",
				i, tok.Literal, w[0], w[1], tok.Line, tok.Column)
		}
	}
}
