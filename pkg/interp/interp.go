// Package interp is a tree-walking evaluator for fastmath programs. Plain
// operators are evaluated with checked integer semantics; calls produced by
// the rewriter (Dispatch::fast_add, ...) go through package dispatch, so
// running a program before and after rewriting shows the difference
// between the two.
package interp

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/dispatch"
	"github.com/raymyers/fastmath/pkg/ntypes"
	"github.com/raymyers/fastmath/pkg/parser"
	"github.com/raymyers/fastmath/pkg/rewrite"
)

// DefaultMaxDepth bounds nested calls.
const DefaultMaxDepth = 512

type Interpreter struct {
	globals *Env
	funcs   map[string]Callable
	depth   int

	MaxDepth int
}

// New registers the functions of prog. Methods are registered under
// Type::name. Items still wrapped in a region are registered unchanged and
// run with plain semantics.
func New(prog *ast.Program) (*Interpreter, error) {
	in := &Interpreter{
		globals:  NewEnv(),
		funcs:    builtins(),
		MaxDepth: DefaultMaxDepth,
	}
	for _, it := range prog.Items {
		if err := in.register(it, ""); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func (in *Interpreter) register(it ast.Node, owner string) error {
	switch x := it.(type) {
	case *ast.Region:
		return in.register(x.Body, owner)
	case *ast.FuncDecl:
		f, err := newFunction(x)
		if err != nil {
			return err
		}
		name := x.Name
		if owner != "" {
			name = owner + "::" + x.Name
		}
		if _, dup := in.funcs[name]; dup {
			return fmt.Errorf("duplicate definition of %s", name)
		}
		in.funcs[name] = f
	case *ast.ImplBlock:
		for _, m := range x.Methods {
			if err := in.register(m, x.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

// Call runs the function name (or Type::method) with args.
func (in *Interpreter) Call(name string, args ...Value) (Value, error) {
	f, ok := in.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: function %s", ErrUndefined, name)
	}
	return in.call(name, f, args)
}

func (in *Interpreter) call(name string, f Callable, args []Value) (Value, error) {
	if len(args) != f.Arity() {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, name, f.Arity(), len(args))
	}
	if in.depth >= in.MaxDepth {
		return nil, fmt.Errorf("%w: %d nested calls", ErrStackOverflow, in.depth)
	}
	in.depth++
	defer func() { in.depth-- }()
	return f.Call(in, args)
}

// ParseArg reads a constant expression such as 420u16, -3 or 2.5 as a
// value.
func ParseArg(src string) (Value, error) {
	e, err := parser.ParseExpr(src)
	if err != nil {
		return nil, err
	}
	in := &Interpreter{globals: NewEnv(), funcs: map[string]Callable{}, MaxDepth: 1}
	return in.expr(e, in.globals)
}

func (in *Interpreter) block(b *ast.Block, outer *Env) (Value, error) {
	env := NewChild(outer)
	tail := b.Value()
	for i, s := range b.Stmts {
		if tail != nil && i == len(b.Stmts)-1 {
			return in.expr(tail, env)
		}
		if err := in.stmt(s, env); err != nil {
			return nil, err
		}
	}
	return Unit{}, nil
}

func (in *Interpreter) stmt(s ast.Stmt, env *Env) error {
	switch x := s.(type) {
	case *ast.ExprStmt:
		_, err := in.expr(x.X, env)
		return err
	case *ast.Let:
		return in.let(x, env)
	case *ast.For:
		return in.forLoop(x, env)
	case *ast.Return:
		var v Value = Unit{}
		if x.Value != nil {
			var err error
			if v, err = in.expr(x.Value, env); err != nil {
				return err
			}
		}
		return &returnValue{v}
	case *ast.Block:
		_, err := in.block(x, env)
		return err
	case *ast.Region:
		switch body := x.Body.(type) {
		case ast.Stmt:
			return in.stmt(body, env)
		case ast.Expr:
			_, err := in.expr(body, env)
			return err
		}
	}
	return fmt.Errorf("%s: unsupported statement %T", where(s.Position()), s)
}

func (in *Interpreter) let(x *ast.Let, env *Env) error {
	var typ ntypes.Type
	if x.Type != "" {
		t, err := resolveType(x.Type)
		if err != nil {
			return err
		}
		typ = t
	}
	var v Value
	if x.Init != nil {
		init, err := in.expr(x.Init, env)
		if err != nil {
			return err
		}
		v = init
		if typ != nil {
			if v, err = convert(init, typ); err != nil {
				return fmt.Errorf("let %s: %w", x.Name, err)
			}
		} else {
			typ = typeOf(v)
		}
	}
	env.Define(x.Name, v, typ, x.Mutable)
	return nil
}

func (in *Interpreter) forLoop(x *ast.For, env *Env) error {
	start, err := in.expr(x.Start, env)
	if err != nil {
		return err
	}
	end, err := in.expr(x.End, env)
	if err != nil {
		return err
	}
	if start, end, err = unify(start, end); err != nil {
		return err
	}
	start = defaultType(start)
	t, ok := typeOf(start).(ntypes.Tint)
	if !ok {
		return fmt.Errorf("%w: range over %s", ErrType, typeName(start))
	}
	i, _ := toBig(start)
	last, _ := toBig(defaultType(end))
	if !x.Inclusive {
		last.Sub(last, big.NewInt(1))
	}
	one := big.NewInt(1)
	for ; i.Cmp(last) <= 0; i.Add(i, one) {
		scope := NewChild(env)
		scope.Define(x.Var, wrapInt(t, i), t, false)
		if _, err := in.block(x.Body, scope); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) expr(e ast.Expr, env *Env) (Value, error) {
	switch x := e.(type) {
	case *ast.Literal:
		return literal(x)
	case *ast.Ident:
		v, ok := env.Get(x.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefined, x.Name)
		}
		if v == nil {
			return nil, fmt.Errorf("%w: %s is not initialized", ErrUndefined, x.Name)
		}
		return v, nil
	case *ast.Grouping:
		return in.expr(x.Inner, env)
	case *ast.Unary:
		if x.Op == ast.OpDeref {
			break
		}
		v, err := in.expr(x.Operand, env)
		if err != nil {
			return nil, err
		}
		return unaryOp(x.Op, v)
	case *ast.Binary:
		return in.binary(x, env)
	case *ast.Assign:
		name, err := assignTarget(x.Target)
		if err != nil {
			return nil, err
		}
		v, err := in.expr(x.Value, env)
		if err != nil {
			return nil, err
		}
		return Unit{}, env.Assign(name, v)
	case *ast.CompoundAssign:
		name, err := assignTarget(x.Target)
		if err != nil {
			return nil, err
		}
		cur, err := in.expr(x.Target, env)
		if err != nil {
			return nil, err
		}
		v, err := in.expr(x.Value, env)
		if err != nil {
			return nil, err
		}
		r, err := binaryOp(x.Op, cur, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where(x.Pos), err)
		}
		return Unit{}, env.Assign(name, r)
	case *ast.Call:
		return in.callExpr(x, env)
	case *ast.Cast:
		v, err := in.expr(x.X, env)
		if err != nil {
			return nil, err
		}
		t, err := resolveType(x.Type)
		if err != nil {
			return nil, err
		}
		return cast(v, t)
	case *ast.If:
		cond, err := in.cond(x.Cond, env)
		if err != nil {
			return nil, err
		}
		if cond {
			return in.block(x.Then, env)
		}
		if x.Else == nil {
			return Unit{}, nil
		}
		return in.expr(x.Else, env)
	case *ast.While:
		for {
			cond, err := in.cond(x.Cond, env)
			if err != nil {
				return nil, err
			}
			if !cond {
				return Unit{}, nil
			}
			if _, err := in.block(x.Body, env); err != nil {
				return nil, err
			}
		}
	case *ast.Block:
		return in.block(x, env)
	case *ast.Region:
		if body, ok := x.Body.(ast.Expr); ok {
			return in.expr(body, env)
		}
	}
	return nil, fmt.Errorf("%s: %w: unsupported expression %T", where(e.Position()), ErrType, e)
}

func (in *Interpreter) binary(x *ast.Binary, env *Env) (Value, error) {
	if x.Op == ast.OpAnd || x.Op == ast.OpOr {
		l, err := in.cond(x.Left, env)
		if err != nil {
			return nil, err
		}
		if l == (x.Op == ast.OpOr) {
			return Bool(l), nil
		}
		r, err := in.cond(x.Right, env)
		return Bool(r), err
	}
	l, err := in.expr(x.Left, env)
	if err != nil {
		return nil, err
	}
	r, err := in.expr(x.Right, env)
	if err != nil {
		return nil, err
	}
	v, err := binaryOp(x.Op, l, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where(x.Pos), err)
	}
	return v, nil
}

func (in *Interpreter) cond(e ast.Expr, env *Env) (bool, error) {
	v, err := in.expr(e, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(Bool)
	if !ok {
		return false, fmt.Errorf("%s: %w: condition is %s, not bool", where(e.Position()), ErrType, typeName(v))
	}
	return bool(b), nil
}

func (in *Interpreter) callExpr(x *ast.Call, env *Env) (Value, error) {
	args := make([]Value, len(x.Args))
	for i, a := range x.Args {
		v, err := in.expr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if m, ok := rewrite.DispatchMethod(x.Callee); ok {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: %s takes 2, got %d", ErrArity, m, len(args))
		}
		v, err := fastCall(m, args[0], args[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where(x.Pos), err)
		}
		return v, nil
	}

	var name string
	switch c := x.Callee.(type) {
	case *ast.Ident:
		name = c.Name
	case *ast.Path:
		if len(c.Segments) == 2 {
			name = c.Segments[0] + "::" + c.Segments[1]
		}
	}
	f, ok := in.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w: function %s", where(x.Pos), ErrUndefined, ast.String(x.Callee))
	}
	return in.call(name, f, args)
}

// fastCall evaluates a dispatched operation. Constants adopt the type of
// the other operand; shift amounts become u32.
func fastCall(m dispatch.Method, lhs, rhs Value) (Value, error) {
	if m.IsShift() {
		lhs = defaultType(lhs)
		if _, ok := toBig(rhs); !ok {
			return nil, fmt.Errorf("%w: shift amount must be an integer, got %s", ErrType, typeName(rhs))
		}
		amount, err := cast(rhs, ntypes.UInt(ntypes.I32))
		if err != nil {
			return nil, err
		}
		rhs = amount
	} else {
		var err error
		if lhs, rhs, err = unify(lhs, rhs); err != nil {
			return nil, err
		}
		lhs, rhs = defaultType(lhs), defaultType(rhs)
	}
	return invoke(m, lhs, rhs)
}

func invoke(m dispatch.Method, lhs, rhs Value) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, &Trap{Method: m, Cause: r}
		}
	}()
	return dispatch.Invoke(m, lhs, rhs)
}

func where(p ast.Pos) string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}

// assignTarget names the variable an assignment stores into. The
// interpreter has no places other than variables, so field, index and
// deref targets, which the rewriter accepts, fail here.
func assignTarget(e ast.Expr) (string, error) {
	if id, ok := e.(*ast.Ident); ok {
		return id.Name, nil
	}
	return "", fmt.Errorf("%s: %w: only variables can be assigned, not %s", where(e.Position()), ErrType, ast.String(e))
}

func literal(x *ast.Literal) (Value, error) {
	var v Value
	switch x.Kind {
	case ast.LitBool:
		return Bool(x.Value == "true"), nil
	case ast.LitFloat:
		f, err := strconv.ParseFloat(x.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad float %q", where(x.Pos), x.Value)
		}
		v = untypedFloat(f)
	default:
		b, ok := new(big.Int).SetString(x.Value, 10)
		if !ok {
			return nil, fmt.Errorf("%s: bad integer %q", where(x.Pos), x.Value)
		}
		v = untypedInt{b}
	}
	if x.Suffix == "" {
		return v, nil
	}
	t, err := resolveType(x.Suffix)
	if err != nil {
		return nil, err
	}
	out, err := convert(v, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where(x.Pos), err)
	}
	return out, nil
}
