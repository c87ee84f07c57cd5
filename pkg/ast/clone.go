package ast

// CloneExpr returns a deep copy of e. Rewrites that need a subtree in two
// places clone it so that the tree never shares nodes.
func CloneExpr(e Expr) Expr {
	switch x := e.(type) {
	case nil:
		return nil
	case *Literal:
		c := *x
		return &c
	case *Ident:
		c := *x
		return &c
	case *Path:
		return &Path{Pos: x.Pos, Segments: append([]string(nil), x.Segments...)}
	case *Grouping:
		return &Grouping{Pos: x.Pos, Inner: CloneExpr(x.Inner)}
	case *Unary:
		return &Unary{Pos: x.Pos, Op: x.Op, Operand: CloneExpr(x.Operand)}
	case *Binary:
		return &Binary{Pos: x.Pos, Op: x.Op, Left: CloneExpr(x.Left), Right: CloneExpr(x.Right)}
	case *Assign:
		return &Assign{Pos: x.Pos, Target: CloneExpr(x.Target), Value: CloneExpr(x.Value)}
	case *CompoundAssign:
		return &CompoundAssign{Pos: x.Pos, Op: x.Op, Target: CloneExpr(x.Target), Value: CloneExpr(x.Value)}
	case *Call:
		return &Call{Pos: x.Pos, Callee: CloneExpr(x.Callee), Args: cloneExprs(x.Args)}
	case *Field:
		return &Field{Pos: x.Pos, X: CloneExpr(x.X), Name: x.Name}
	case *Index:
		return &Index{Pos: x.Pos, X: CloneExpr(x.X), Index: CloneExpr(x.Index)}
	case *Cast:
		return &Cast{Pos: x.Pos, X: CloneExpr(x.X), Type: x.Type}
	case *If:
		return &If{Pos: x.Pos, Cond: CloneExpr(x.Cond), Then: CloneBlock(x.Then), Else: CloneExpr(x.Else)}
	case *While:
		return &While{Pos: x.Pos, Cond: CloneExpr(x.Cond), Body: CloneBlock(x.Body)}
	case *Block:
		return CloneBlock(x)
	case *Region:
		return &Region{Pos: x.Pos, Body: cloneNode(x.Body)}
	}
	panic("ast: CloneExpr: unexpected expression type")
}

func cloneExprs(es []Expr) []Expr {
	if es == nil {
		return nil
	}
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = CloneExpr(e)
	}
	return out
}

// CloneBlock returns a deep copy of b.
func CloneBlock(b *Block) *Block {
	if b == nil {
		return nil
	}
	out := &Block{Pos: b.Pos, Stmts: make([]Stmt, len(b.Stmts))}
	for i, s := range b.Stmts {
		out.Stmts[i] = CloneStmt(s)
	}
	return out
}

// CloneStmt returns a deep copy of s.
func CloneStmt(s Stmt) Stmt {
	switch x := s.(type) {
	case nil:
		return nil
	case *ExprStmt:
		return &ExprStmt{Pos: x.Pos, X: CloneExpr(x.X), Semi: x.Semi}
	case *Let:
		c := *x
		c.Init = CloneExpr(x.Init)
		return &c
	case *For:
		return &For{Pos: x.Pos, Var: x.Var, Start: CloneExpr(x.Start), End: CloneExpr(x.End),
			Inclusive: x.Inclusive, Body: CloneBlock(x.Body)}
	case *Return:
		return &Return{Pos: x.Pos, Value: CloneExpr(x.Value)}
	case *Block:
		return CloneBlock(x)
	case *Region:
		return &Region{Pos: x.Pos, Body: cloneNode(x.Body)}
	}
	panic("ast: CloneStmt: unexpected statement type")
}

// CloneFunc returns a deep copy of f.
func CloneFunc(f *FuncDecl) *FuncDecl {
	if f == nil {
		return nil
	}
	c := *f
	c.Params = append([]Param(nil), f.Params...)
	c.Body = CloneBlock(f.Body)
	return &c
}

// CloneProgram returns a deep copy of p.
func CloneProgram(p *Program) *Program {
	out := &Program{Pos: p.Pos, Items: make([]Item, len(p.Items))}
	for i, it := range p.Items {
		out.Items[i] = CloneItem(it)
	}
	return out
}

// CloneItem returns a deep copy of a top-level item.
func CloneItem(it Item) Item {
	if it == nil {
		return nil
	}
	return cloneNode(it).(Item)
}

func cloneNode(n Node) Node {
	switch x := n.(type) {
	case *FuncDecl:
		return CloneFunc(x)
	case *ImplBlock:
		c := &ImplBlock{Pos: x.Pos, Type: x.Type, Methods: make([]*FuncDecl, len(x.Methods))}
		for i, m := range x.Methods {
			c.Methods[i] = CloneFunc(m)
		}
		return c
	case *Region:
		return &Region{Pos: x.Pos, Body: cloneNode(x.Body)}
	case *Block:
		return CloneBlock(x)
	case Expr:
		return CloneExpr(x)
	case Stmt:
		return CloneStmt(x)
	}
	panic("ast: unexpected node type")
}
