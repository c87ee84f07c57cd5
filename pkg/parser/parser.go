// Package parser implements a recursive descent parser for fastmath source
package parser

import (
	"fmt"
	"strings"

	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/lexer"
	"github.com/raymyers/fastmath/pkg/ntypes"
)

// Parser parses fastmath source code into an AST
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	errors    []string
}

// New creates a new Parser for the given lexer
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Read two tokens to initialize curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// SyntaxError collects the messages of a failed parse
type SyntaxError struct {
	Errors []string
}

func (e *SyntaxError) Error() string {
	return strings.Join(e.Errors, "\n")
}

// ParseFile parses a complete source file.
func ParseFile(src string) (*ast.Program, error) {
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.errors) > 0 {
		return nil, &SyntaxError{Errors: p.errors}
	}
	return prog, nil
}

// ParseExpr parses a single expression; trailing input is an error.
func ParseExpr(src string) (ast.Expr, error) {
	p := New(lexer.New(src))
	e := p.ParseExpression()
	if len(p.errors) == 0 && !p.curTokenIs(lexer.TokenEOF) {
		p.addError(fmt.Sprintf("unexpected %s after expression", p.curToken.Type))
	}
	if len(p.errors) > 0 {
		return nil, &SyntaxError{Errors: p.errors}
	}
	return e, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, fmt.Sprintf("line %d, col %d: %s",
		p.curToken.Line, p.curToken.Column, msg))
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf("expected %s, got %s", t, p.curToken.Type))
	return false
}

func (p *Parser) pos() ast.Pos {
	return ast.Pos{Line: p.curToken.Line, Col: p.curToken.Column}
}

func (p *Parser) failed(before int) bool {
	return len(p.errors) > before
}

// ParseProgram parses items until EOF. After an error the parser skips to
// the next item keyword and keeps going so that several errors can be
// reported at once.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Pos: p.pos()}
	for !p.curTokenIs(lexer.TokenEOF) {
		before := len(p.errors)
		start := p.curToken
		item := p.parseItem()
		if p.failed(before) {
			if p.curToken == start {
				p.nextToken()
			}
			p.skipToItem()
			continue
		}
		prog.Items = append(prog.Items, item)
	}
	return prog
}

func (p *Parser) skipToItem() {
	for !p.curTokenIs(lexer.TokenEOF) && !p.curTokenIs(lexer.TokenFn) &&
		!p.curTokenIs(lexer.TokenImpl) && !p.curTokenIs(lexer.TokenHash) {
		p.nextToken()
	}
}

func (p *Parser) parseItem() ast.Item {
	switch p.curToken.Type {
	case lexer.TokenFn:
		if fn := p.parseFunc(); fn != nil {
			return fn
		}
		return nil
	case lexer.TokenImpl:
		if impl := p.parseImpl(); impl != nil {
			return impl
		}
		return nil
	case lexer.TokenHash:
		pos := p.pos()
		if !p.parseAttribute() {
			return nil
		}
		body := p.parseItem()
		if body == nil {
			return nil
		}
		return &ast.Region{Pos: pos, Body: body}
	}
	p.addError(fmt.Sprintf("expected fn or impl, got %s", p.curToken.Type))
	return nil
}

// parseAttribute consumes #[fast].
func (p *Parser) parseAttribute() bool {
	p.nextToken() // consume '#'
	if !p.expect(lexer.TokenLBracket) {
		return false
	}
	if !p.curTokenIs(lexer.TokenIdent) || p.curToken.Literal != "fast" {
		p.addError(fmt.Sprintf("unknown attribute %q", p.curToken.Literal))
		return false
	}
	p.nextToken()
	return p.expect(lexer.TokenRBracket)
}

func (p *Parser) parseFunc() *ast.FuncDecl {
	fn := &ast.FuncDecl{Pos: p.pos()}
	p.nextToken() // consume 'fn'

	if !p.curTokenIs(lexer.TokenIdent) {
		p.addError(fmt.Sprintf("expected function name, got %s", p.curToken.Type))
		return nil
	}
	fn.Name = p.curToken.Literal
	p.nextToken()

	if !p.expect(lexer.TokenLParen) {
		return nil
	}
	for !p.curTokenIs(lexer.TokenRParen) {
		if len(fn.Params) > 0 && !p.expect(lexer.TokenComma) {
			return nil
		}
		if !p.curTokenIs(lexer.TokenIdent) {
			p.addError(fmt.Sprintf("expected parameter name, got %s", p.curToken.Type))
			return nil
		}
		param := ast.Param{Name: p.curToken.Literal}
		p.nextToken()
		if !p.expect(lexer.TokenColon) {
			return nil
		}
		if param.Type = p.parseType(); param.Type == "" {
			return nil
		}
		fn.Params = append(fn.Params, param)
	}
	p.nextToken() // consume ')'

	if p.curTokenIs(lexer.TokenArrow) {
		p.nextToken()
		if fn.Result = p.parseType(); fn.Result == "" {
			return nil
		}
	}

	if !p.curTokenIs(lexer.TokenLBrace) {
		p.addError(fmt.Sprintf("expected '{', got %s", p.curToken.Type))
		return nil
	}
	fn.Body = p.parseBlock()
	return fn
}

func (p *Parser) parseImpl() *ast.ImplBlock {
	impl := &ast.ImplBlock{Pos: p.pos()}
	p.nextToken() // consume 'impl'

	if impl.Type = p.parseType(); impl.Type == "" {
		return nil
	}
	if !p.expect(lexer.TokenLBrace) {
		return nil
	}
	for !p.curTokenIs(lexer.TokenRBrace) {
		before := len(p.errors)
		marked := false
		pos := p.pos()
		if p.curTokenIs(lexer.TokenHash) {
			if !p.parseAttribute() {
				return nil
			}
			marked = true
		}
		if !p.curTokenIs(lexer.TokenFn) {
			p.addError(fmt.Sprintf("expected fn in impl block, got %s", p.curToken.Type))
			return nil
		}
		m := p.parseFunc()
		if p.failed(before) {
			return nil
		}
		if marked {
			// A marked method is its body wrapped in fast! { }.
			m.Body = &ast.Block{Pos: m.Body.Pos, Stmts: []ast.Stmt{
				&ast.ExprStmt{Pos: pos, X: &ast.Region{Pos: pos, Body: m.Body}},
			}}
		}
		impl.Methods = append(impl.Methods, m)
	}
	p.nextToken() // consume '}'
	return impl
}

// parseType reads a type name: a scalar, a path or a name with generic
// arguments (Vec3<f32>). Scalars never take arguments, so "x as u8 < y"
// stays a comparison.
func (p *Parser) parseType() string {
	if !p.curTokenIs(lexer.TokenIdent) {
		p.addError(fmt.Sprintf("expected type, got %s", p.curToken.Type))
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p.curToken.Literal)
	p.nextToken()
	for p.curTokenIs(lexer.TokenColonColon) && p.peekTokenIs(lexer.TokenIdent) {
		p.nextToken()
		sb.WriteString("::" + p.curToken.Literal)
		p.nextToken()
	}
	if _, scalar := ntypes.Lookup(sb.String()); scalar || !p.curTokenIs(lexer.TokenLt) {
		return sb.String()
	}
	p.nextToken() // consume '<'
	sb.WriteString("<")
	for i := 0; !p.curTokenIs(lexer.TokenGt); i++ {
		if i > 0 {
			if !p.expect(lexer.TokenComma) {
				return ""
			}
			sb.WriteString(", ")
		}
		arg := p.parseType()
		if arg == "" {
			return ""
		}
		sb.WriteString(arg)
	}
	p.nextToken() // consume '>'
	sb.WriteString(">")
	return sb.String()
}

func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Pos: p.pos(), Stmts: []ast.Stmt{}}

	p.nextToken() // consume '{'

	for !p.curTokenIs(lexer.TokenRBrace) && !p.curTokenIs(lexer.TokenEOF) {
		before := len(p.errors)
		stmt := p.parseStatement()
		if p.failed(before) {
			p.synchronize()
			continue
		}
		block.Stmts = append(block.Stmts, stmt)
	}

	p.expect(lexer.TokenRBrace)

	return block
}

// synchronize skips past the rest of a broken statement.
func (p *Parser) synchronize() {
	for !p.curTokenIs(lexer.TokenSemicolon) && !p.curTokenIs(lexer.TokenRBrace) &&
		!p.curTokenIs(lexer.TokenEOF) {
		p.nextToken()
	}
	if p.curTokenIs(lexer.TokenSemicolon) {
		p.nextToken()
	}
}

// ParseStatement parses a single statement
func (p *Parser) ParseStatement() ast.Stmt {
	return p.parseStatement()
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.curToken.Type {
	case lexer.TokenLet:
		return p.parseLet()
	case lexer.TokenFor:
		return p.parseFor()
	case lexer.TokenReturn:
		return p.parseReturnStatement()
	case lexer.TokenHash:
		pos := p.pos()
		if !p.parseAttribute() {
			return nil
		}
		body := p.parseStatement()
		if body == nil {
			return nil
		}
		return &ast.Region{Pos: pos, Body: body}
	case lexer.TokenLBrace:
		return p.parseBlock()
	case lexer.TokenSemicolon:
		p.addError("empty statement")
		return nil
	}
	return p.parseExprStatement()
}

func (p *Parser) parseLet() ast.Stmt {
	let := &ast.Let{Pos: p.pos()}
	p.nextToken() // consume 'let'

	if p.curTokenIs(lexer.TokenMut) {
		let.Mutable = true
		p.nextToken()
	}
	if !p.curTokenIs(lexer.TokenIdent) {
		p.addError(fmt.Sprintf("expected variable name, got %s", p.curToken.Type))
		return nil
	}
	let.Name = p.curToken.Literal
	p.nextToken()

	if p.curTokenIs(lexer.TokenColon) {
		p.nextToken()
		if let.Type = p.parseType(); let.Type == "" {
			return nil
		}
	}
	if p.curTokenIs(lexer.TokenAssign) {
		p.nextToken()
		if let.Init = p.ParseExpression(); let.Init == nil {
			return nil
		}
	}
	if !p.expect(lexer.TokenSemicolon) {
		return nil
	}
	return let
}

func (p *Parser) parseFor() ast.Stmt {
	f := &ast.For{Pos: p.pos()}
	p.nextToken() // consume 'for'

	if !p.curTokenIs(lexer.TokenIdent) {
		p.addError(fmt.Sprintf("expected loop variable, got %s", p.curToken.Type))
		return nil
	}
	f.Var = p.curToken.Literal
	p.nextToken()
	if !p.expect(lexer.TokenIn) {
		return nil
	}
	if f.Start = p.ParseExpression(); f.Start == nil {
		return nil
	}
	switch p.curToken.Type {
	case lexer.TokenDotDot:
	case lexer.TokenDotDotAssign:
		f.Inclusive = true
	default:
		p.addError(fmt.Sprintf("expected .. or ..=, got %s", p.curToken.Type))
		return nil
	}
	p.nextToken()
	if f.End = p.ParseExpression(); f.End == nil {
		return nil
	}
	if !p.curTokenIs(lexer.TokenLBrace) {
		p.addError(fmt.Sprintf("expected '{', got %s", p.curToken.Type))
		return nil
	}
	f.Body = p.parseBlock()
	return f
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	ret := &ast.Return{Pos: p.pos()}
	p.nextToken() // consume 'return'

	if !p.curTokenIs(lexer.TokenSemicolon) && !p.curTokenIs(lexer.TokenRBrace) {
		if ret.Value = p.ParseExpression(); ret.Value == nil {
			return nil
		}
	}

	if p.curTokenIs(lexer.TokenRBrace) {
		return ret
	}
	if !p.expect(lexer.TokenSemicolon) {
		return nil
	}
	return ret
}

func (p *Parser) parseExprStatement() ast.Stmt {
	stmt := &ast.ExprStmt{Pos: p.pos()}
	if stmt.X = p.ParseExpression(); stmt.X == nil {
		return nil
	}
	switch {
	case p.curTokenIs(lexer.TokenSemicolon):
		stmt.Semi = true
		p.nextToken()
	case p.curTokenIs(lexer.TokenRBrace), endsWithBlock(stmt.X):
	default:
		p.addError(fmt.Sprintf("expected ;, got %s", p.curToken.Type))
		return nil
	}
	return stmt
}

// endsWithBlock reports whether e may stand as a statement without ';'.
func endsWithBlock(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.If, *ast.While, *ast.Block:
		return true
	case *ast.Region:
		_, ok := x.Body.(*ast.Block)
		return ok
	}
	return false
}

// infixPrec returns the binding strength of the current token as an infix
// operator, or PrecNone.
func (p *Parser) infixPrec() int {
	if p.curTokenIs(lexer.TokenAs) {
		return ast.PrecCast
	}
	if p.curTokenIs(lexer.TokenAssign) {
		return ast.PrecAssign
	}
	if op, ok := binaryOps[p.curToken.Type]; ok {
		return op.Precedence()
	}
	return ast.PrecNone
}

var binaryOps = map[lexer.TokenType]ast.BinaryOp{
	lexer.TokenPlus:          ast.OpAdd,
	lexer.TokenMinus:         ast.OpSub,
	lexer.TokenStar:          ast.OpMul,
	lexer.TokenSlash:         ast.OpDiv,
	lexer.TokenPercent:       ast.OpRem,
	lexer.TokenShl:           ast.OpShl,
	lexer.TokenShr:           ast.OpShr,
	lexer.TokenLt:            ast.OpLt,
	lexer.TokenLe:            ast.OpLe,
	lexer.TokenGt:            ast.OpGt,
	lexer.TokenGe:            ast.OpGe,
	lexer.TokenEq:            ast.OpEq,
	lexer.TokenNe:            ast.OpNe,
	lexer.TokenAnd:           ast.OpAnd,
	lexer.TokenOr:            ast.OpOr,
	lexer.TokenAmpersand:     ast.OpBitAnd,
	lexer.TokenPipe:          ast.OpBitOr,
	lexer.TokenCaret:         ast.OpBitXor,
	lexer.TokenPlusAssign:    ast.OpAddAssign,
	lexer.TokenMinusAssign:   ast.OpSubAssign,
	lexer.TokenStarAssign:    ast.OpMulAssign,
	lexer.TokenSlashAssign:   ast.OpDivAssign,
	lexer.TokenPercentAssign: ast.OpRemAssign,
	lexer.TokenShlAssign:     ast.OpShlAssign,
	lexer.TokenShrAssign:     ast.OpShrAssign,
	lexer.TokenAndAssign:     ast.OpAndAssign,
	lexer.TokenOrAssign:      ast.OpOrAssign,
	lexer.TokenXorAssign:     ast.OpXorAssign,
}

// ParseExpression parses an expression, including assignments
func (p *Parser) ParseExpression() ast.Expr {
	return p.parseExpr(ast.PrecAssign)
}

// parseExpr climbs operator precedence: it parses operators binding at
// least as tightly as minPrec. Assignment is right associative, everything
// else left associative.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()
	for left != nil {
		prec := p.infixPrec()
		if prec == ast.PrecNone || prec < minPrec {
			break
		}
		pos := left.Position()
		tok := p.curToken
		p.nextToken()

		switch {
		case tok.Type == lexer.TokenAs:
			typ := p.parseType()
			if typ == "" {
				return nil
			}
			left = &ast.Cast{Pos: pos, X: left, Type: typ}
		case tok.Type == lexer.TokenAssign:
			right := p.parseExpr(ast.PrecAssign)
			if right == nil {
				return nil
			}
			left = &ast.Assign{Pos: pos, Target: left, Value: right}
		case binaryOps[tok.Type].IsCompound():
			right := p.parseExpr(ast.PrecAssign)
			if right == nil {
				return nil
			}
			left = &ast.CompoundAssign{Pos: pos, Op: binaryOps[tok.Type].Base(), Target: left, Value: right}
		default:
			right := p.parseExpr(prec + 1)
			if right == nil {
				return nil
			}
			left = &ast.Binary{Pos: pos, Op: binaryOps[tok.Type], Left: left, Right: right}
		}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	pos := p.pos()
	var op ast.UnaryOp
	switch p.curToken.Type {
	case lexer.TokenMinus:
		op = ast.OpNeg
	case lexer.TokenNot:
		op = ast.OpNot
	case lexer.TokenStar:
		op = ast.OpDeref
	default:
		return p.parsePostfix()
	}
	p.nextToken()
	operand := p.parseUnary()
	if operand == nil {
		return nil
	}
	return &ast.Unary{Pos: pos, Op: op, Operand: operand}
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for expr != nil {
		pos := expr.Position()
		switch p.curToken.Type {
		case lexer.TokenLParen:
			p.nextToken() // consume '('
			call := &ast.Call{Pos: pos, Callee: expr, Args: []ast.Expr{}}
			for !p.curTokenIs(lexer.TokenRParen) {
				if len(call.Args) > 0 && !p.expect(lexer.TokenComma) {
					return nil
				}
				arg := p.ParseExpression()
				if arg == nil {
					return nil
				}
				call.Args = append(call.Args, arg)
			}
			p.nextToken() // consume ')'
			expr = call
		case lexer.TokenDot:
			p.nextToken()
			if !p.curTokenIs(lexer.TokenIdent) && !p.curTokenIs(lexer.TokenInt) {
				p.addError(fmt.Sprintf("expected field name, got %s", p.curToken.Type))
				return nil
			}
			expr = &ast.Field{Pos: pos, X: expr, Name: p.curToken.Literal}
			p.nextToken()
		case lexer.TokenLBracket:
			p.nextToken()
			idx := p.ParseExpression()
			if idx == nil || !p.expect(lexer.TokenRBracket) {
				return nil
			}
			expr = &ast.Index{Pos: pos, X: expr, Index: idx}
		default:
			return expr
		}
	}
	return nil
}

func (p *Parser) parsePrimary() ast.Expr {
	pos := p.pos()
	switch p.curToken.Type {
	case lexer.TokenInt, lexer.TokenFloat:
		kind := ast.LitInt
		if p.curTokenIs(lexer.TokenFloat) {
			kind = ast.LitFloat
		}
		lit := &ast.Literal{Pos: pos, Kind: kind, Value: p.curToken.Literal, Suffix: p.curToken.Suffix}
		p.nextToken()
		return lit
	case lexer.TokenTrue, lexer.TokenFalse:
		lit := &ast.Literal{Pos: pos, Kind: ast.LitBool, Value: p.curToken.Literal}
		p.nextToken()
		return lit
	case lexer.TokenIdent:
		return p.parseName()
	case lexer.TokenLParen:
		p.nextToken()
		inner := p.ParseExpression()
		if inner == nil || !p.expect(lexer.TokenRParen) {
			return nil
		}
		return &ast.Grouping{Pos: pos, Inner: inner}
	case lexer.TokenLBrace:
		return p.parseBlock()
	case lexer.TokenIf:
		return p.parseIf()
	case lexer.TokenWhile:
		p.nextToken()
		cond := p.ParseExpression()
		if cond == nil {
			return nil
		}
		if !p.curTokenIs(lexer.TokenLBrace) {
			p.addError(fmt.Sprintf("expected '{', got %s", p.curToken.Type))
			return nil
		}
		return &ast.While{Pos: pos, Cond: cond, Body: p.parseBlock()}
	case lexer.TokenIllegal:
		p.addError(fmt.Sprintf("illegal token %q", p.curToken.Literal))
		return nil
	}
	p.addError(fmt.Sprintf("expected expression, got %s", p.curToken.Type))
	return nil
}

// parseName parses an identifier, a path (Type::name) or fast! { ... }.
func (p *Parser) parseName() ast.Expr {
	pos := p.pos()
	name := p.curToken.Literal

	if name == "fast" && p.peekTokenIs(lexer.TokenNot) {
		p.nextToken() // consume 'fast'
		p.nextToken() // consume '!'
		if !p.curTokenIs(lexer.TokenLBrace) {
			p.addError(fmt.Sprintf("expected '{' after fast!, got %s", p.curToken.Type))
			return nil
		}
		return &ast.Region{Pos: pos, Body: p.parseBlock()}
	}

	p.nextToken()
	if !p.curTokenIs(lexer.TokenColonColon) {
		return &ast.Ident{Pos: pos, Name: name}
	}
	path := &ast.Path{Pos: pos, Segments: []string{name}}
	for p.curTokenIs(lexer.TokenColonColon) {
		p.nextToken()
		if !p.curTokenIs(lexer.TokenIdent) {
			p.addError(fmt.Sprintf("expected name after ::, got %s", p.curToken.Type))
			return nil
		}
		path.Segments = append(path.Segments, p.curToken.Literal)
		p.nextToken()
	}
	return path
}

func (p *Parser) parseIf() ast.Expr {
	e := &ast.If{Pos: p.pos()}
	p.nextToken() // consume 'if'

	if e.Cond = p.ParseExpression(); e.Cond == nil {
		return nil
	}
	if !p.curTokenIs(lexer.TokenLBrace) {
		p.addError(fmt.Sprintf("expected '{', got %s", p.curToken.Type))
		return nil
	}
	e.Then = p.parseBlock()
	if !p.curTokenIs(lexer.TokenElse) {
		return e
	}
	p.nextToken() // consume 'else'
	switch {
	case p.curTokenIs(lexer.TokenIf):
		if e.Else = p.parseIf(); e.Else == nil {
			return nil
		}
	case p.curTokenIs(lexer.TokenLBrace):
		e.Else = p.parseBlock()
	default:
		p.addError(fmt.Sprintf("expected '{' or if after else, got %s", p.curToken.Type))
		return nil
	}
	return e
}
