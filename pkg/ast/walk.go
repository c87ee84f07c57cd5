package ast

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node. If f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch x := n.(type) {
	case *Grouping:
		inspectExpr(x.Inner, f)
	case *Unary:
		inspectExpr(x.Operand, f)
	case *Binary:
		inspectExpr(x.Left, f)
		inspectExpr(x.Right, f)
	case *Assign:
		inspectExpr(x.Target, f)
		inspectExpr(x.Value, f)
	case *CompoundAssign:
		inspectExpr(x.Target, f)
		inspectExpr(x.Value, f)
	case *Call:
		inspectExpr(x.Callee, f)
		for _, a := range x.Args {
			inspectExpr(a, f)
		}
	case *Field:
		inspectExpr(x.X, f)
	case *Index:
		inspectExpr(x.X, f)
		inspectExpr(x.Index, f)
	case *Cast:
		inspectExpr(x.X, f)
	case *If:
		inspectExpr(x.Cond, f)
		if x.Then != nil {
			Inspect(x.Then, f)
		}
		inspectExpr(x.Else, f)
	case *While:
		inspectExpr(x.Cond, f)
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *Block:
		for _, s := range x.Stmts {
			Inspect(s, f)
		}
	case *Region:
		Inspect(x.Body, f)
	case *ExprStmt:
		inspectExpr(x.X, f)
	case *Let:
		inspectExpr(x.Init, f)
	case *For:
		inspectExpr(x.Start, f)
		inspectExpr(x.End, f)
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *Return:
		inspectExpr(x.Value, f)
	case *FuncDecl:
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *ImplBlock:
		for _, m := range x.Methods {
			Inspect(m, f)
		}
	case *Program:
		for _, it := range x.Items {
			Inspect(it, f)
		}
	}
}

// inspectExpr skips nil interface values so optional children need no
// checks at the call sites.
func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}
