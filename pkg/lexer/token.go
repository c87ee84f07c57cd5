package lexer

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenIdent // main, foo, x
	TokenInt   // 42, 7u16
	TokenFloat // 1.5, 2.0f32

	// Keywords
	TokenFn     // fn
	TokenLet    // let
	TokenMut    // mut
	TokenFor    // for
	TokenIn     // in
	TokenWhile  // while
	TokenIf     // if
	TokenElse   // else
	TokenReturn // return
	TokenImpl   // impl
	TokenAs     // as
	TokenTrue   // true
	TokenFalse  // false

	// Operators
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenPercent   // %
	TokenAssign    // =
	TokenEq        // ==
	TokenNe        // !=
	TokenLt        // <
	TokenLe        // <=
	TokenGt        // >
	TokenGe        // >=
	TokenAnd       // &&
	TokenOr        // ||
	TokenNot       // !
	TokenAmpersand // &
	TokenPipe      // |
	TokenCaret     // ^
	TokenShl       // <<
	TokenShr       // >>

	// Compound assignment operators
	TokenPlusAssign    // +=
	TokenMinusAssign   // -=
	TokenStarAssign    // *=
	TokenSlashAssign   // /=
	TokenPercentAssign // %=
	TokenAndAssign     // &=
	TokenOrAssign      // |=
	TokenXorAssign     // ^=
	TokenShlAssign     // <<=
	TokenShrAssign     // >>=

	// Delimiters
	TokenLParen       // (
	TokenRParen       // )
	TokenLBrace       // {
	TokenRBrace       // }
	TokenLBracket     // [
	TokenRBracket     // ]
	TokenSemicolon    // ;
	TokenColon        // :
	TokenColonColon   // ::
	TokenComma        // ,
	TokenDot          // .
	TokenDotDot       // ..
	TokenDotDotAssign // ..=
	TokenArrow        // ->
	TokenHash         // #
)

var tokenNames = map[TokenType]string{
	TokenEOF:           "EOF",
	TokenIllegal:       "ILLEGAL",
	TokenIdent:         "IDENT",
	TokenInt:           "INT",
	TokenFloat:         "FLOAT",
	TokenFn:            "fn",
	TokenLet:           "let",
	TokenMut:           "mut",
	TokenFor:           "for",
	TokenIn:            "in",
	TokenWhile:         "while",
	TokenIf:            "if",
	TokenElse:          "else",
	TokenReturn:        "return",
	TokenImpl:          "impl",
	TokenAs:            "as",
	TokenTrue:          "true",
	TokenFalse:         "false",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenPercent:       "%",
	TokenAssign:        "=",
	TokenEq:            "==",
	TokenNe:            "!=",
	TokenLt:            "<",
	TokenLe:            "<=",
	TokenGt:            ">",
	TokenGe:            ">=",
	TokenAnd:           "&&",
	TokenOr:            "||",
	TokenNot:           "!",
	TokenAmpersand:     "&",
	TokenPipe:          "|",
	TokenCaret:         "^",
	TokenShl:           "<<",
	TokenShr:           ">>",
	TokenPlusAssign:    "+=",
	TokenMinusAssign:   "-=",
	TokenStarAssign:    "*=",
	TokenSlashAssign:   "/=",
	TokenPercentAssign: "%=",
	TokenAndAssign:     "&=",
	TokenOrAssign:      "|=",
	TokenXorAssign:     "^=",
	TokenShlAssign:     "<<=",
	TokenShrAssign:     ">>=",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenSemicolon:     ";",
	TokenColon:         ":",
	TokenColonColon:    "::",
	TokenComma:         ",",
	TokenDot:           ".",
	TokenDotDot:        "..",
	TokenDotDotAssign:  "..=",
	TokenArrow:         "->",
	TokenHash:          "#",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token. For numeric literals Literal holds the
// digits without separators and Suffix the type suffix, if any.
type Token struct {
	Type    TokenType
	Literal string
	Suffix  string
	Line    int
	Column  int
}

// keywords maps keyword strings to token types
var keywords = map[string]TokenType{
	"fn":     TokenFn,
	"let":    TokenLet,
	"mut":    TokenMut,
	"for":    TokenFor,
	"in":     TokenIn,
	"while":  TokenWhile,
	"if":     TokenIf,
	"else":   TokenElse,
	"return": TokenReturn,
	"impl":   TokenImpl,
	"as":     TokenAs,
	"true":   TokenTrue,
	"false":  TokenFalse,
}

// LookupIdent returns the token type for an identifier (keyword or IDENT)
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}
