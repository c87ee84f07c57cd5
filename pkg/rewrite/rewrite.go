// Package rewrite replaces arithmetic operators with calls into the fast
// numeric dispatch interface.
//
// Every Binary node whose operator is one of + - * / % << >> becomes
// Dispatch::fast_xxx(left, right), compound assignments with those operators
// become target = Dispatch::fast_xxx(target, value), and groupings are
// erased. Nothing else changes: comparisons, logical and bitwise operators,
// and &= |= ^= are left as written. The pass performs no type analysis; the
// dispatch interface resolves behavior by operand type.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/dispatch"
)

// DispatchType is the first path segment of every emitted callee.
const DispatchType = "Dispatch"

var (
	ErrNotAssignable = errors.New("compound assignment target is not assignable")
	ErrNilNode       = errors.New("missing operand")
	ErrBadRegion     = errors.New("marked region does not fit its position")
)

// Error is a structural failure at a source position. The whole rewrite
// call fails on the first one.
type Error struct {
	Pos ast.Pos
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, col %d: %v", e.Pos.Line, e.Pos.Col, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// MethodFor maps a plain arithmetic operator to its dispatch method.
func MethodFor(op ast.BinaryOp) (dispatch.Method, bool) {
	switch op {
	case ast.OpAdd:
		return dispatch.MethodAdd, true
	case ast.OpSub:
		return dispatch.MethodSub, true
	case ast.OpMul:
		return dispatch.MethodMul, true
	case ast.OpDiv:
		return dispatch.MethodDiv, true
	case ast.OpRem:
		return dispatch.MethodRem, true
	case ast.OpShl:
		return dispatch.MethodShl, true
	case ast.OpShr:
		return dispatch.MethodShr, true
	}
	return 0, false
}

// DispatchMethod reports whether callee is a Dispatch::fast_xxx path and
// which method it names.
func DispatchMethod(callee ast.Expr) (dispatch.Method, bool) {
	p, ok := callee.(*ast.Path)
	if !ok || len(p.Segments) != 2 || p.Segments[0] != DispatchType {
		return 0, false
	}
	return dispatch.ParseMethod(p.Segments[1])
}

// Count returns the number of dispatch calls in the tree rooted at n.
func Count(n ast.Node) int {
	count := 0
	ast.Inspect(n, func(n ast.Node) bool {
		if c, ok := n.(*ast.Call); ok {
			if _, ok := DispatchMethod(c.Callee); ok {
				count++
			}
		}
		return true
	})
	return count
}

// Expr rewrites an expression and returns the new root, which differs from
// e when e itself is rewritten (a Binary root becomes a Call). On error e
// stays well formed, and rewriting it again fails the same way.
func Expr(e ast.Expr) (ast.Expr, error) {
	if e == nil {
		return nil, &Error{Err: ErrNilNode}
	}
	return expr(e)
}

// Stmt rewrites a statement. A marked statement is unwrapped, so the
// result may differ from s.
func Stmt(s ast.Stmt) (ast.Stmt, error) {
	if s == nil {
		return nil, &Error{Err: ErrNilNode}
	}
	return stmt(s)
}

// Block rewrites every statement of b in place. On error b is left as it
// was.
func Block(b *ast.Block) (*ast.Block, error) {
	if b == nil {
		return nil, &Error{Err: ErrNilNode}
	}
	work := ast.CloneBlock(b)
	if err := block(work); err != nil {
		return nil, err
	}
	b.Stmts = work.Stmts
	return b, nil
}

// Func rewrites a function body in place. On error f is left as it was.
func Func(f *ast.FuncDecl) (*ast.FuncDecl, error) {
	if f == nil || f.Body == nil {
		return nil, &Error{Err: ErrNilNode}
	}
	body := ast.CloneBlock(f.Body)
	if err := block(body); err != nil {
		return nil, err
	}
	f.Body = body
	return f, nil
}

// Impl rewrites every method of an impl block in place. No method changes
// unless all of them rewrite.
func Impl(impl *ast.ImplBlock) (*ast.ImplBlock, error) {
	if impl == nil {
		return nil, &Error{Err: ErrNilNode}
	}
	bodies := make([]*ast.Block, len(impl.Methods))
	for i, m := range impl.Methods {
		if m == nil || m.Body == nil {
			return nil, &Error{Pos: impl.Pos, Err: ErrNilNode}
		}
		bodies[i] = ast.CloneBlock(m.Body)
		if err := block(bodies[i]); err != nil {
			return nil, err
		}
	}
	for i, m := range impl.Methods {
		m.Body = bodies[i]
	}
	return impl, nil
}

// Node rewrites any fragment: a program, an item, a statement or an
// expression. Marked regions are rewritten and unwrapped. A program is
// rewritten all or nothing.
func Node(n ast.Node) (ast.Node, error) {
	switch x := n.(type) {
	case nil:
		return nil, &Error{Err: ErrNilNode}
	case *ast.Program:
		items := make([]ast.Item, len(x.Items))
		for i, it := range x.Items {
			out, err := Item(ast.CloneItem(it))
			if err != nil {
				return nil, err
			}
			items[i] = out
		}
		x.Items = items
		return x, nil
	case *ast.Region:
		return Node(x.Body)
	case *ast.FuncDecl:
		return Func(x)
	case *ast.ImplBlock:
		return Impl(x)
	case *ast.Block:
		return Block(x)
	case ast.Expr:
		return Expr(x)
	case ast.Stmt:
		return Stmt(x)
	}
	return nil, &Error{Pos: n.Position(), Err: ErrBadRegion}
}

// Item rewrites a top-level item; a marked item is unwrapped.
func Item(it ast.Item) (ast.Item, error) {
	switch x := it.(type) {
	case *ast.FuncDecl:
		return Func(x)
	case *ast.ImplBlock:
		return Impl(x)
	case *ast.Region:
		body, ok := x.Body.(ast.Item)
		if !ok {
			return nil, &Error{Pos: x.Pos, Err: ErrBadRegion}
		}
		return Item(body)
	}
	return nil, &Error{Err: ErrNilNode}
}

func block(b *ast.Block) error {
	for i, s := range b.Stmts {
		out, err := stmt(s)
		if err != nil {
			return err
		}
		b.Stmts[i] = out
	}
	return nil
}

// stmt and expr store a rewritten child only once it succeeded, so a failed
// rewrite never leaves a nil hole in the tree.
func stmt(s ast.Stmt) (ast.Stmt, error) {
	switch x := s.(type) {
	case *ast.ExprStmt:
		e, err := required(x.X, x.Pos)
		if err != nil {
			return nil, err
		}
		x.X = e
	case *ast.Let:
		init, err := expr(x.Init)
		if err != nil {
			return nil, err
		}
		x.Init = init
	case *ast.For:
		start, err := required(x.Start, x.Pos)
		if err != nil {
			return nil, err
		}
		end, err := required(x.End, x.Pos)
		if err != nil {
			return nil, err
		}
		if x.Body != nil {
			if err = block(x.Body); err != nil {
				return nil, err
			}
		}
		x.Start, x.End = start, end
	case *ast.Return:
		v, err := expr(x.Value)
		if err != nil {
			return nil, err
		}
		x.Value = v
	case *ast.Block:
		if err := block(x); err != nil {
			return nil, err
		}
	case *ast.Region:
		switch body := x.Body.(type) {
		case ast.Stmt:
			return stmt(body)
		case ast.Expr:
			e, err := expr(body)
			if err != nil {
				return nil, err
			}
			return &ast.ExprStmt{Pos: x.Pos, X: e}, nil
		}
		return nil, &Error{Pos: x.Pos, Err: ErrBadRegion}
	case nil:
		return nil, &Error{Err: ErrNilNode}
	}
	return s, nil
}

// required rewrites a child that must be present.
func required(e ast.Expr, parent ast.Pos) (ast.Expr, error) {
	if e == nil {
		return nil, &Error{Pos: parent, Err: ErrNilNode}
	}
	return expr(e)
}

// expr rewrites e bottom-up. Optional children arrive as nil and stay nil.
func expr(e ast.Expr) (ast.Expr, error) {
	for {
		g, ok := e.(*ast.Grouping)
		if !ok {
			break
		}
		e = g.Inner
		if e == nil {
			return nil, &Error{Pos: g.Pos, Err: ErrNilNode}
		}
	}

	switch x := e.(type) {
	case nil:
		return nil, nil
	case *ast.Literal, *ast.Ident, *ast.Path:
		return e, nil
	case *ast.Unary:
		operand, err := required(x.Operand, x.Pos)
		if err != nil {
			return nil, err
		}
		x.Operand = operand
	case *ast.Binary:
		return binary(x)
	case *ast.Assign:
		target, value, err := pair(x.Target, x.Value, x.Pos)
		if err != nil {
			return nil, err
		}
		x.Target, x.Value = target, value
	case *ast.CompoundAssign:
		target, value, err := pair(x.Target, x.Value, x.Pos)
		if err != nil {
			return nil, err
		}
		if m, ok := MethodFor(x.Op); ok {
			return compound(x.Pos, m, target, value)
		}
		x.Target, x.Value = target, value
	case *ast.Call:
		callee, err := required(x.Callee, x.Pos)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(x.Args))
		for i, a := range x.Args {
			if args[i], err = required(a, x.Pos); err != nil {
				return nil, err
			}
		}
		x.Callee, x.Args = callee, args
	case *ast.Field:
		inner, err := required(x.X, x.Pos)
		if err != nil {
			return nil, err
		}
		x.X = inner
	case *ast.Index:
		inner, index, err := pair(x.X, x.Index, x.Pos)
		if err != nil {
			return nil, err
		}
		x.X, x.Index = inner, index
	case *ast.Cast:
		inner, err := required(x.X, x.Pos)
		if err != nil {
			return nil, err
		}
		x.X = inner
	case *ast.If:
		cond, err := required(x.Cond, x.Pos)
		if err != nil {
			return nil, err
		}
		if x.Then != nil {
			if err = block(x.Then); err != nil {
				return nil, err
			}
		}
		els, err := expr(x.Else)
		if err != nil {
			return nil, err
		}
		x.Cond, x.Else = cond, els
	case *ast.While:
		cond, err := required(x.Cond, x.Pos)
		if err != nil {
			return nil, err
		}
		if x.Body != nil {
			if err = block(x.Body); err != nil {
				return nil, err
			}
		}
		x.Cond = cond
	case *ast.Block:
		if err := block(x); err != nil {
			return nil, err
		}
	case *ast.Region:
		// Already inside a rewrite: same rules, wrapper dropped.
		body, ok := x.Body.(ast.Expr)
		if !ok {
			return nil, &Error{Pos: x.Pos, Err: ErrBadRegion}
		}
		return expr(body)
	}
	return e, nil
}

// pair rewrites two required children.
func pair(a, b ast.Expr, parent ast.Pos) (ast.Expr, ast.Expr, error) {
	left, err := required(a, parent)
	if err != nil {
		return nil, nil, err
	}
	right, err := required(b, parent)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func binary(x *ast.Binary) (ast.Expr, error) {
	left, right, err := pair(x.Left, x.Right, x.Pos)
	if err != nil {
		return nil, err
	}
	if m, ok := MethodFor(x.Op); ok {
		return call(x.Pos, m, left, right), nil
	}
	if x.Op.IsCompound() {
		if m, ok := MethodFor(x.Op.Base()); ok {
			return compound(x.Pos, m, left, right)
		}
	}
	x.Left, x.Right = left, right
	return x, nil
}

// compound desugars target op= value into target = op(target, value). The
// target appears twice, so the second occurrence is a clone.
func compound(pos ast.Pos, m dispatch.Method, target, value ast.Expr) (ast.Expr, error) {
	if !assignable(target) {
		return nil, &Error{Pos: pos, Err: ErrNotAssignable}
	}
	return &ast.Assign{
		Pos:    pos,
		Target: target,
		Value:  call(pos, m, ast.CloneExpr(target), value),
	}, nil
}

func call(pos ast.Pos, m dispatch.Method, left, right ast.Expr) *ast.Call {
	return &ast.Call{
		Pos:    pos,
		Callee: &ast.Path{Pos: pos, Segments: []string{DispatchType, m.String()}},
		Args:   []ast.Expr{left, right},
	}
}

func assignable(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.Ident, *ast.Field, *ast.Index:
		return true
	case *ast.Unary:
		return x.Op == ast.OpDeref
	}
	return false
}
