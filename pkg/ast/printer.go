package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer outputs the AST as fastmath source
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: 0}
}

// String renders any node as source text.
func String(n Node) string {
	var sb strings.Builder
	p := NewPrinter(&sb)
	switch x := n.(type) {
	case *Program:
		p.PrintProgram(x)
	case *FuncDecl, *ImplBlock:
		p.PrintItem(x.(Item))
	case *Region:
		if regionKind(x) == regionItem {
			p.PrintItem(x)
		} else {
			p.PrintStmt(x)
		}
	case Expr:
		p.PrintExpr(x)
	case Stmt:
		p.PrintStmt(x)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

const (
	regionItem = iota
	regionStmt
	regionExpr
)

// regionKind classifies what a region wraps; nested regions take the kind
// of the innermost body.
func regionKind(r *Region) int {
	switch body := r.Body.(type) {
	case *FuncDecl, *ImplBlock:
		return regionItem
	case *Region:
		return regionKind(body)
	case Expr:
		return regionExpr
	}
	return regionStmt
}

// PrintProgram prints a complete program
func (p *Printer) PrintProgram(prog *Program) {
	for i, it := range prog.Items {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.PrintItem(it)
	}
}

func (p *Printer) writeIndent() {
	fmt.Fprint(p.w, strings.Repeat("  ", p.indent))
}

// PrintItem prints a function, impl block or marked item
func (p *Printer) PrintItem(it Item) {
	switch d := it.(type) {
	case *FuncDecl:
		p.printFunc(d)
	case *ImplBlock:
		p.writeIndent()
		fmt.Fprintf(p.w, "impl %s {\n", d.Type)
		p.indent++
		for i, m := range d.Methods {
			if i > 0 {
				fmt.Fprintln(p.w)
			}
			p.printFunc(m)
		}
		p.indent--
		p.writeIndent()
		fmt.Fprintln(p.w, "}")
	case *Region:
		if regionKind(d) != regionItem {
			p.PrintStmt(d)
			return
		}
		p.writeIndent()
		fmt.Fprintln(p.w, "#[fast]")
		p.PrintItem(d.Body.(Item))
	default:
		fmt.Fprintf(p.w, "/* unknown item %T */\n", it)
	}
}

func (p *Printer) printFunc(f *FuncDecl) {
	p.writeIndent()
	fmt.Fprintf(p.w, "fn %s(", f.Name)
	for i, param := range f.Params {
		if i > 0 {
			fmt.Fprint(p.w, ", ")
		}
		fmt.Fprintf(p.w, "%s: %s", param.Name, param.Type)
	}
	fmt.Fprint(p.w, ")")
	if f.Result != "" {
		fmt.Fprintf(p.w, " -> %s", f.Result)
	}
	fmt.Fprint(p.w, " ")
	p.printBlock(f.Body)
	fmt.Fprintln(p.w)
}

// printBlock prints a block starting at the current column; the closing
// brace is indented to the current level and not followed by a newline.
func (p *Printer) printBlock(b *Block) {
	if b == nil || len(b.Stmts) == 0 {
		fmt.Fprint(p.w, "{}")
		return
	}
	fmt.Fprintln(p.w, "{")
	p.indent++
	for _, stmt := range b.Stmts {
		p.PrintStmt(stmt)
	}
	p.indent--
	p.writeIndent()
	fmt.Fprint(p.w, "}")
}

// PrintStmt prints one statement on its own line(s)
func (p *Printer) PrintStmt(stmt Stmt) {
	p.writeIndent()
	switch s := stmt.(type) {
	case *ExprStmt:
		p.PrintExpr(s.X)
		if s.Semi {
			fmt.Fprint(p.w, ";")
		}
		fmt.Fprintln(p.w)
	case *Let:
		fmt.Fprint(p.w, "let ")
		if s.Mutable {
			fmt.Fprint(p.w, "mut ")
		}
		fmt.Fprint(p.w, s.Name)
		if s.Type != "" {
			fmt.Fprintf(p.w, ": %s", s.Type)
		}
		if s.Init != nil {
			fmt.Fprint(p.w, " = ")
			p.PrintExpr(s.Init)
		}
		fmt.Fprintln(p.w, ";")
	case *For:
		fmt.Fprintf(p.w, "for %s in ", s.Var)
		p.printExprPrec(s.Start, PrecOr)
		if s.Inclusive {
			fmt.Fprint(p.w, "..=")
		} else {
			fmt.Fprint(p.w, "..")
		}
		p.printExprPrec(s.End, PrecOr)
		fmt.Fprint(p.w, " ")
		p.printBlock(s.Body)
		fmt.Fprintln(p.w)
	case *Return:
		fmt.Fprint(p.w, "return")
		if s.Value != nil {
			fmt.Fprint(p.w, " ")
			p.PrintExpr(s.Value)
		}
		fmt.Fprintln(p.w, ";")
	case *Block:
		p.printBlock(s)
		fmt.Fprintln(p.w)
	case *Region:
		if regionKind(s) == regionExpr {
			p.printRegionExpr(s)
			fmt.Fprintln(p.w)
			return
		}
		fmt.Fprintln(p.w, "#[fast]")
		if inner, ok := s.Body.(Stmt); ok {
			p.PrintStmt(inner)
		}
	default:
		fmt.Fprintf(p.w, "/* unknown stmt %T */;\n", stmt)
	}
}

// PrintExpr prints an expression without a trailing newline
func (p *Printer) PrintExpr(expr Expr) {
	p.printExprPrec(expr, PrecNone)
}

// printExprPrec prints expr, wrapping it in parentheses when its operator
// binds looser than minPrec.
func (p *Printer) printExprPrec(expr Expr, minPrec int) {
	if expr == nil {
		return
	}
	if ExprPrecedence(expr) < minPrec {
		fmt.Fprint(p.w, "(")
		p.printExprPrec(expr, PrecNone)
		fmt.Fprint(p.w, ")")
		return
	}

	switch e := expr.(type) {
	case *Literal:
		fmt.Fprint(p.w, e.Value+e.Suffix)
	case *Ident:
		fmt.Fprint(p.w, e.Name)
	case *Path:
		fmt.Fprint(p.w, strings.Join(e.Segments, "::"))
	case *Grouping:
		fmt.Fprint(p.w, "(")
		p.printExprPrec(e.Inner, PrecNone)
		fmt.Fprint(p.w, ")")
	case *Unary:
		fmt.Fprint(p.w, e.Op.String())
		p.printExprPrec(e.Operand, PrecUnary)
	case *Binary:
		prec := e.Op.Precedence()
		if e.Op.IsCompound() {
			p.printExprPrec(e.Left, PrecAssign+1)
			fmt.Fprintf(p.w, " %s ", e.Op.String())
			p.printExprPrec(e.Right, PrecAssign)
			return
		}
		p.printExprPrec(e.Left, prec)
		fmt.Fprintf(p.w, " %s ", e.Op.String())
		p.printExprPrec(e.Right, prec+1)
	case *Assign:
		p.printExprPrec(e.Target, PrecAssign+1)
		fmt.Fprint(p.w, " = ")
		p.printExprPrec(e.Value, PrecAssign)
	case *CompoundAssign:
		op, _ := e.Op.Compound()
		p.printExprPrec(e.Target, PrecAssign+1)
		fmt.Fprintf(p.w, " %s ", op.String())
		p.printExprPrec(e.Value, PrecAssign)
	case *Call:
		p.printExprPrec(e.Callee, PrecPostfix)
		fmt.Fprint(p.w, "(")
		for i, arg := range e.Args {
			if i > 0 {
				fmt.Fprint(p.w, ", ")
			}
			p.PrintExpr(arg)
		}
		fmt.Fprint(p.w, ")")
	case *Field:
		p.printExprPrec(e.X, PrecPostfix)
		fmt.Fprintf(p.w, ".%s", e.Name)
	case *Index:
		p.printExprPrec(e.X, PrecPostfix)
		fmt.Fprint(p.w, "[")
		p.PrintExpr(e.Index)
		fmt.Fprint(p.w, "]")
	case *Cast:
		p.printExprPrec(e.X, PrecCast)
		fmt.Fprintf(p.w, " as %s", e.Type)
	case *If:
		p.printIf(e)
	case *While:
		fmt.Fprint(p.w, "while ")
		p.PrintExpr(e.Cond)
		fmt.Fprint(p.w, " ")
		p.printBlock(e.Body)
	case *Block:
		p.printBlock(e)
	case *Region:
		p.printRegionExpr(e)
	default:
		fmt.Fprintf(p.w, "/* unknown expr %T */", expr)
	}
}

func (p *Printer) printIf(e *If) {
	fmt.Fprint(p.w, "if ")
	p.PrintExpr(e.Cond)
	fmt.Fprint(p.w, " ")
	p.printBlock(e.Then)
	if e.Else != nil {
		fmt.Fprint(p.w, " else ")
		p.PrintExpr(e.Else)
	}
}

// printRegionExpr prints fast! { ... }; nested expression regions print
// as nested macros.
func (p *Printer) printRegionExpr(r *Region) {
	fmt.Fprint(p.w, "fast! ")
	switch body := r.Body.(type) {
	case *Block:
		p.printBlock(body)
	case Expr:
		fmt.Fprint(p.w, "{ ")
		p.PrintExpr(body)
		fmt.Fprint(p.w, " }")
	}
}
