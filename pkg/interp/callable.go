package interp

import (
	"fmt"
	"math"

	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/dispatch"
	"github.com/raymyers/fastmath/pkg/ntypes"
)

type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

type NativeFun struct {
	arity int
	call  func(in *Interpreter, args []Value) (Value, error)
}

func NewNativeFun(arity int, call func(in *Interpreter, args []Value) (Value, error)) Callable {
	return NativeFun{arity, call}
}

func (c NativeFun) Arity() int {
	return c.arity
}

func (c NativeFun) Call(in *Interpreter, args []Value) (Value, error) {
	return c.call(in, args)
}

// Function is a declared fn or impl method.
type Function struct {
	decl   *ast.FuncDecl
	params []ntypes.Type
	result ntypes.Type // nil for unit
}

func newFunction(decl *ast.FuncDecl) (*Function, error) {
	f := &Function{decl: decl}
	for _, p := range decl.Params {
		t, err := resolveType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("fn %s: parameter %s: %w", decl.Name, p.Name, err)
		}
		f.params = append(f.params, t)
	}
	if decl.Result != "" {
		t, err := resolveType(decl.Result)
		if err != nil {
			return nil, fmt.Errorf("fn %s: result: %w", decl.Name, err)
		}
		f.result = t
	}
	return f, nil
}

func (f *Function) Arity() int {
	return len(f.params)
}

func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewChild(in.globals)
	for i, p := range f.decl.Params {
		v, err := convert(args[i], f.params[i])
		if err != nil {
			return nil, fmt.Errorf("fn %s: argument %s: %w", f.decl.Name, p.Name, err)
		}
		env.Define(p.Name, v, f.params[i], false)
	}

	v, err := in.block(f.decl.Body, env)
	if ret, ok := err.(*returnValue); ok {
		v, err = ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.result == nil {
		return Unit{}, nil
	}
	out, err := convert(v, f.result)
	if err != nil {
		return nil, fmt.Errorf("fn %s: result: %w", f.decl.Name, err)
	}
	return out, nil
}

func resolveType(name string) (ntypes.Type, error) {
	t, ok := ntypes.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported type %s", ErrType, name)
	}
	return t, nil
}

func builtins() map[string]Callable {
	wrap := func(op ast.BinaryOp) Callable {
		return NewNativeFun(2, func(_ *Interpreter, args []Value) (Value, error) {
			return wrapping(op, args[0], args[1])
		})
	}
	return map[string]Callable{
		"wrapping_add": wrap(ast.OpAdd),
		"wrapping_sub": wrap(ast.OpSub),
		"wrapping_mul": wrap(ast.OpMul),
		"sqrt": NewNativeFun(1, func(_ *Interpreter, args []Value) (Value, error) {
			switch x := args[0].(type) {
			case dispatch.F32:
				return dispatch.F32(math.Sqrt(float64(x))), nil
			case dispatch.F64:
				return dispatch.F64(math.Sqrt(float64(x))), nil
			case untypedFloat:
				return untypedFloat(math.Sqrt(float64(x))), nil
			}
			return nil, fmt.Errorf("%w: sqrt of %s", ErrType, typeName(args[0]))
		}),
	}
}
