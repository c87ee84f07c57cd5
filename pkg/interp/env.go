package interp

import (
	"fmt"

	"github.com/raymyers/fastmath/pkg/ntypes"
)

type binding struct {
	value   Value
	typ     ntypes.Type
	mutable bool
}

// Env is a lexical scope
type Env struct {
	outer *Env

	values map[string]*binding
}

func NewEnv() *Env {
	return &Env{values: make(map[string]*binding), outer: nil}
}

func NewChild(outer *Env) *Env {
	return &Env{values: make(map[string]*binding), outer: outer}
}

// Define introduces a binding, shadowing any outer one of the same name.
func (e *Env) Define(name string, value Value, typ ntypes.Type, mutable bool) {
	e.values[name] = &binding{value: value, typ: typ, mutable: mutable}
}

func (e *Env) lookup(name string) (*binding, bool) {
	b, ok := e.values[name]
	if !ok && e.outer != nil {
		return e.outer.lookup(name)
	}
	return b, ok
}

func (e *Env) Get(name string) (Value, bool) {
	b, ok := e.lookup(name)
	if !ok {
		return nil, false
	}
	return b.value, true
}

// Assign updates an existing mutable binding. Untyped constants take the
// declared type of the variable; a variable declared without a type takes
// the type of the first typed value assigned to it.
func (e *Env) Assign(name string, value Value) error {
	b, ok := e.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	if !b.mutable {
		return fmt.Errorf("%w: %s", ErrImmutable, name)
	}
	if b.typ == nil {
		b.value = value
		b.typ = typeOf(value)
		return nil
	}
	v, err := convert(value, b.typ)
	if err != nil {
		return fmt.Errorf("assign %s: %w", name, err)
	}
	b.value = v
	return nil
}
