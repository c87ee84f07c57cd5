package lower

import (
	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/rewrite"
)

// finder walks unmarked code looking for regions. Each region found is
// handed to the rewriter, which also unwraps it; code outside regions is
// left untouched.
type finder struct {
	regions int
}

func (f *finder) item(it ast.Item) error {
	switch x := it.(type) {
	case *ast.FuncDecl:
		return f.block(x.Body)
	case *ast.ImplBlock:
		for _, m := range x.Methods {
			if err := f.block(m.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *finder) block(b *ast.Block) error {
	if b == nil {
		return nil
	}
	for i, s := range b.Stmts {
		out, err := f.stmt(s)
		if err != nil {
			return err
		}
		b.Stmts[i] = out
	}
	return nil
}

func (f *finder) stmt(s ast.Stmt) (ast.Stmt, error) {
	switch x := s.(type) {
	case *ast.Region:
		f.regions++
		return rewrite.Stmt(x)
	case *ast.ExprStmt:
		e, err := f.expr(x.X)
		if err != nil {
			return nil, err
		}
		x.X = e
	case *ast.Let:
		init, err := f.expr(x.Init)
		if err != nil {
			return nil, err
		}
		x.Init = init
	case *ast.For:
		start, end, err := f.pair(x.Start, x.End)
		if err != nil {
			return nil, err
		}
		if err = f.block(x.Body); err != nil {
			return nil, err
		}
		x.Start, x.End = start, end
	case *ast.Return:
		v, err := f.expr(x.Value)
		if err != nil {
			return nil, err
		}
		x.Value = v
	case *ast.Block:
		if err := f.block(x); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// expr replaces each region it meets by its rewrite. A child is stored only
// once its own walk succeeded.
func (f *finder) expr(e ast.Expr) (ast.Expr, error) {
	switch x := e.(type) {
	case nil:
		return nil, nil
	case *ast.Region:
		f.regions++
		return rewrite.Expr(x)
	case *ast.Grouping:
		inner, err := f.expr(x.Inner)
		if err != nil {
			return nil, err
		}
		x.Inner = inner
	case *ast.Unary:
		operand, err := f.expr(x.Operand)
		if err != nil {
			return nil, err
		}
		x.Operand = operand
	case *ast.Binary:
		left, right, err := f.pair(x.Left, x.Right)
		if err != nil {
			return nil, err
		}
		x.Left, x.Right = left, right
	case *ast.Assign:
		target, value, err := f.pair(x.Target, x.Value)
		if err != nil {
			return nil, err
		}
		x.Target, x.Value = target, value
	case *ast.CompoundAssign:
		target, value, err := f.pair(x.Target, x.Value)
		if err != nil {
			return nil, err
		}
		x.Target, x.Value = target, value
	case *ast.Call:
		callee, err := f.expr(x.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(x.Args))
		for i, a := range x.Args {
			if args[i], err = f.expr(a); err != nil {
				return nil, err
			}
		}
		x.Callee, x.Args = callee, args
	case *ast.Field:
		inner, err := f.expr(x.X)
		if err != nil {
			return nil, err
		}
		x.X = inner
	case *ast.Index:
		inner, index, err := f.pair(x.X, x.Index)
		if err != nil {
			return nil, err
		}
		x.X, x.Index = inner, index
	case *ast.Cast:
		inner, err := f.expr(x.X)
		if err != nil {
			return nil, err
		}
		x.X = inner
	case *ast.If:
		cond, err := f.expr(x.Cond)
		if err != nil {
			return nil, err
		}
		if err = f.block(x.Then); err != nil {
			return nil, err
		}
		els, err := f.expr(x.Else)
		if err != nil {
			return nil, err
		}
		x.Cond, x.Else = cond, els
	case *ast.While:
		cond, err := f.expr(x.Cond)
		if err != nil {
			return nil, err
		}
		if err = f.block(x.Body); err != nil {
			return nil, err
		}
		x.Cond = cond
	case *ast.Block:
		if err := f.block(x); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (f *finder) pair(a, b ast.Expr) (ast.Expr, ast.Expr, error) {
	left, err := f.expr(a)
	if err != nil {
		return nil, nil, err
	}
	right, err := f.expr(b)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}
