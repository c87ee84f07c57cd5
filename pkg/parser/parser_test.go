package parser

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/lexer"
	"gopkg.in/yaml.v3"
)

// ParseCase represents a test case from parse.yaml
type ParseCase struct {
	Name    string  `yaml:"name"`
	Input   string  `yaml:"input"`
	Expr    bool    `yaml:"expr"`
	Printed string  `yaml:"printed"`
	AST     ASTSpec `yaml:"ast"`
}

// ASTSpec represents the expected AST structure
type ASTSpec struct {
	Kind  string    `yaml:"kind"`
	Name  string    `yaml:"name,omitempty"`
	Op    string    `yaml:"op,omitempty"`
	Value string    `yaml:"value,omitempty"`
	Type  string    `yaml:"type,omitempty"`
	Body  *ASTSpec  `yaml:"body,omitempty"`
	Items []ASTSpec `yaml:"items,omitempty"`
	Args  []ASTSpec `yaml:"args,omitempty"`
	Expr  *ASTSpec  `yaml:"expr,omitempty"`
	Left  *ASTSpec  `yaml:"left,omitempty"`
	Right *ASTSpec  `yaml:"right,omitempty"`
}

// TestFile represents the parse.yaml file structure
type TestFile struct {
	Tests []ParseCase `yaml:"tests"`
}

func TestParseYAML(t *testing.T) {
	data, err := os.ReadFile("../../testdata/parse.yaml")
	if err != nil {
		t.Fatalf("failed to read parse.yaml: %v", err)
	}

	var testFile TestFile
	if err := yaml.Unmarshal(data, &testFile); err != nil {
		t.Fatalf("failed to parse parse.yaml: %v", err)
	}

	for _, tc := range testFile.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			var node ast.Node
			if tc.Expr {
				e, err := ParseExpr(tc.Input)
				if err != nil {
					t.Fatalf("parser errors: %v", err)
				}
				node = e
			} else {
				prog, err := ParseFile(tc.Input)
				if err != nil {
					t.Fatalf("parser errors: %v", err)
				}
				node = prog
			}

			if tc.AST.Kind != "" {
				verifyAST(t, node, tc.AST)
			}
			if tc.Printed != "" {
				got := ast.String(node)
				want := strings.TrimSuffix(tc.Printed, "\n")
				if got != want {
					t.Errorf("printed:\n%s\nwant:\n%s", got, want)
				}
			}
		})
	}
}

func verifyAST(t *testing.T, node ast.Node, spec ASTSpec) {
	t.Helper()

	switch spec.Kind {
	case "Program":
		prog, ok := node.(*ast.Program)
		if !ok {
			t.Fatalf("expected Program, got %T", node)
		}
		if len(spec.Items) != len(prog.Items) {
			t.Fatalf("Program.Items: expected %d items, got %d", len(spec.Items), len(prog.Items))
		}
		for i, itemSpec := range spec.Items {
			verifyAST(t, prog.Items[i], itemSpec)
		}

	case "FuncDecl":
		fn, ok := node.(*ast.FuncDecl)
		if !ok {
			t.Fatalf("expected FuncDecl, got %T", node)
		}
		if spec.Name != "" && fn.Name != spec.Name {
			t.Errorf("FuncDecl.Name: expected %q, got %q", spec.Name, fn.Name)
		}
		if spec.Type != "" && fn.Result != spec.Type {
			t.Errorf("FuncDecl.Result: expected %q, got %q", spec.Type, fn.Result)
		}
		if spec.Body != nil {
			verifyAST(t, fn.Body, *spec.Body)
		}

	case "ImplBlock":
		impl, ok := node.(*ast.ImplBlock)
		if !ok {
			t.Fatalf("expected ImplBlock, got %T", node)
		}
		if spec.Name != "" && impl.Type != spec.Name {
			t.Errorf("ImplBlock.Type: expected %q, got %q", spec.Name, impl.Type)
		}
		if len(spec.Items) != len(impl.Methods) {
			t.Fatalf("ImplBlock.Methods: expected %d, got %d", len(spec.Items), len(impl.Methods))
		}
		for i, m := range spec.Items {
			verifyAST(t, impl.Methods[i], m)
		}

	case "Region":
		region, ok := node.(*ast.Region)
		if !ok {
			t.Fatalf("expected Region, got %T", node)
		}
		if spec.Body != nil {
			verifyAST(t, region.Body, *spec.Body)
		}

	case "Block":
		block, ok := node.(*ast.Block)
		if !ok {
			t.Fatalf("expected Block, got %T", node)
		}
		if len(spec.Items) != len(block.Stmts) {
			t.Fatalf("Block.Stmts: expected %d items, got %d", len(spec.Items), len(block.Stmts))
		}
		for i, itemSpec := range spec.Items {
			verifyAST(t, block.Stmts[i], itemSpec)
		}

	case "ExprStmt":
		stmt, ok := node.(*ast.ExprStmt)
		if !ok {
			t.Fatalf("expected ExprStmt, got %T", node)
		}
		if spec.Expr != nil {
			verifyAST(t, stmt.X, *spec.Expr)
		}

	case "Let":
		let, ok := node.(*ast.Let)
		if !ok {
			t.Fatalf("expected Let, got %T", node)
		}
		if spec.Name != "" && let.Name != spec.Name {
			t.Errorf("Let.Name: expected %q, got %q", spec.Name, let.Name)
		}
		if spec.Type != "" && let.Type != spec.Type {
			t.Errorf("Let.Type: expected %q, got %q", spec.Type, let.Type)
		}
		if spec.Expr != nil {
			verifyAST(t, let.Init, *spec.Expr)
		}

	case "For":
		f, ok := node.(*ast.For)
		if !ok {
			t.Fatalf("expected For, got %T", node)
		}
		if spec.Name != "" && f.Var != spec.Name {
			t.Errorf("For.Var: expected %q, got %q", spec.Name, f.Var)
		}
		if spec.Op != "" {
			op := ".."
			if f.Inclusive {
				op = "..="
			}
			if op != spec.Op {
				t.Errorf("For range: expected %q, got %q", spec.Op, op)
			}
		}
		if spec.Left != nil {
			verifyAST(t, f.Start, *spec.Left)
		}
		if spec.Right != nil {
			verifyAST(t, f.End, *spec.Right)
		}
		if spec.Body != nil {
			verifyAST(t, f.Body, *spec.Body)
		}

	case "Return":
		ret, ok := node.(*ast.Return)
		if !ok {
			t.Fatalf("expected Return, got %T", node)
		}
		if spec.Expr != nil {
			if ret.Value == nil {
				t.Fatal("Return.Value: expected expression, got nil")
			}
			verifyAST(t, ret.Value, *spec.Expr)
		}

	case "Literal":
		lit, ok := node.(*ast.Literal)
		if !ok {
			t.Fatalf("expected Literal, got %T", node)
		}
		if spec.Value != "" && lit.Value != spec.Value {
			t.Errorf("Literal.Value: expected %q, got %q", spec.Value, lit.Value)
		}
		if spec.Type != "" && lit.Suffix != spec.Type {
			t.Errorf("Literal.Suffix: expected %q, got %q", spec.Type, lit.Suffix)
		}

	case "Ident":
		ident, ok := node.(*ast.Ident)
		if !ok {
			t.Fatalf("expected Ident, got %T", node)
		}
		if spec.Name != "" && ident.Name != spec.Name {
			t.Errorf("Ident.Name: expected %q, got %q", spec.Name, ident.Name)
		}

	case "Path":
		path, ok := node.(*ast.Path)
		if !ok {
			t.Fatalf("expected Path, got %T", node)
		}
		if got := strings.Join(path.Segments, "::"); spec.Name != "" && got != spec.Name {
			t.Errorf("Path: expected %q, got %q", spec.Name, got)
		}

	case "Grouping":
		g, ok := node.(*ast.Grouping)
		if !ok {
			t.Fatalf("expected Grouping, got %T", node)
		}
		if spec.Expr != nil {
			verifyAST(t, g.Inner, *spec.Expr)
		}

	case "Unary":
		unary, ok := node.(*ast.Unary)
		if !ok {
			t.Fatalf("expected Unary, got %T", node)
		}
		if spec.Op != "" && unary.Op.String() != spec.Op {
			t.Errorf("Unary.Op: expected %q, got %q", spec.Op, unary.Op.String())
		}
		if spec.Expr != nil {
			verifyAST(t, unary.Operand, *spec.Expr)
		}

	case "Binary":
		binary, ok := node.(*ast.Binary)
		if !ok {
			t.Fatalf("expected Binary, got %T", node)
		}
		if spec.Op != "" && binary.Op.String() != spec.Op {
			t.Errorf("Binary.Op: expected %q, got %q", spec.Op, binary.Op.String())
		}
		if spec.Left != nil {
			verifyAST(t, binary.Left, *spec.Left)
		}
		if spec.Right != nil {
			verifyAST(t, binary.Right, *spec.Right)
		}

	case "Assign":
		assign, ok := node.(*ast.Assign)
		if !ok {
			t.Fatalf("expected Assign, got %T", node)
		}
		if spec.Left != nil {
			verifyAST(t, assign.Target, *spec.Left)
		}
		if spec.Right != nil {
			verifyAST(t, assign.Value, *spec.Right)
		}

	case "CompoundAssign":
		ca, ok := node.(*ast.CompoundAssign)
		if !ok {
			t.Fatalf("expected CompoundAssign, got %T", node)
		}
		if spec.Op != "" && ca.Op.String() != spec.Op {
			t.Errorf("CompoundAssign.Op: expected %q, got %q", spec.Op, ca.Op.String())
		}
		if spec.Left != nil {
			verifyAST(t, ca.Target, *spec.Left)
		}
		if spec.Right != nil {
			verifyAST(t, ca.Value, *spec.Right)
		}

	case "Call":
		call, ok := node.(*ast.Call)
		if !ok {
			t.Fatalf("expected Call, got %T", node)
		}
		if spec.Expr != nil {
			verifyAST(t, call.Callee, *spec.Expr)
		}
		if spec.Args != nil {
			if len(spec.Args) != len(call.Args) {
				t.Fatalf("Call.Args: expected %d, got %d", len(spec.Args), len(call.Args))
			}
			for i, a := range spec.Args {
				verifyAST(t, call.Args[i], a)
			}
		}

	case "Cast":
		cast, ok := node.(*ast.Cast)
		if !ok {
			t.Fatalf("expected Cast, got %T", node)
		}
		if spec.Type != "" && cast.Type != spec.Type {
			t.Errorf("Cast.Type: expected %q, got %q", spec.Type, cast.Type)
		}
		if spec.Expr != nil {
			verifyAST(t, cast.X, *spec.Expr)
		}

	case "Field":
		field, ok := node.(*ast.Field)
		if !ok {
			t.Fatalf("expected Field, got %T", node)
		}
		if spec.Name != "" && field.Name != spec.Name {
			t.Errorf("Field.Name: expected %q, got %q", spec.Name, field.Name)
		}
		if spec.Expr != nil {
			verifyAST(t, field.X, *spec.Expr)
		}

	case "Index":
		index, ok := node.(*ast.Index)
		if !ok {
			t.Fatalf("expected Index, got %T", node)
		}
		if spec.Left != nil {
			verifyAST(t, index.X, *spec.Left)
		}
		if spec.Right != nil {
			verifyAST(t, index.Index, *spec.Right)
		}

	case "If":
		if _, ok := node.(*ast.If); !ok {
			t.Fatalf("expected If, got %T", node)
		}

	case "While":
		if _, ok := node.(*ast.While); !ok {
			t.Fatalf("expected While, got %T", node)
		}

	default:
		t.Fatalf("unknown AST kind: %s", spec.Kind)
	}
}

func TestEmptyFunction(t *testing.T) {
	input := `fn main() {}`

	l := lexer.New(input)
	p := New(l)
	prog := p.ParseProgram()

	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors: %v", p.Errors())
	}
	if len(prog.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(prog.Items))
	}

	fn, ok := prog.Items[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected FuncDecl, got %T", prog.Items[0])
	}
	if fn.Name != "main" {
		t.Errorf("expected name 'main', got %q", fn.Name)
	}
	if fn.Result != "" {
		t.Errorf("expected unit result, got %q", fn.Result)
	}
	if len(fn.Body.Stmts) != 0 {
		t.Errorf("expected empty body, got %d statements", len(fn.Body.Stmts))
	}
}

func TestParams(t *testing.T) {
	prog, err := ParseFile(`fn f(a: u32, v: Vec3<f32>, s: Extent2<u16>) -> u32 { a }`)
	if err != nil {
		t.Fatal(err)
	}
	fn := prog.Items[0].(*ast.FuncDecl)
	want := []ast.Param{{Name: "a", Type: "u32"}, {Name: "v", Type: "Vec3<f32>"}, {Name: "s", Type: "Extent2<u16>"}}
	if len(fn.Params) != len(want) {
		t.Fatalf("expected %d params, got %d", len(want), len(fn.Params))
	}
	for i := range want {
		if fn.Params[i] != want[i] {
			t.Errorf("param %d: expected %+v, got %+v", i, want[i], fn.Params[i])
		}
	}
	if fn.Body.Value() == nil {
		t.Error("expected the body to have a value")
	}
}

func TestBlockValue(t *testing.T) {
	tests := []struct {
		src  string
		want string // dynamic type of the value, "" for none
	}{
		{"fn f() -> i32 { 1 }", "*ast.Literal"},
		{"fn f() { 1; }", ""},
		{"fn f() -> i32 { let a = 1; { a + 1 } }", "*ast.Block"},
		{"fn f() -> i32 { #[fast] { 2 * 3 } }", "*ast.Region"},
		{"fn f() -> i32 { #[fast] 2 * 3 }", "*ast.Binary"},
		{"fn f() { #[fast] for i in 0..3 { i; } }", ""},
	}
	for _, tt := range tests {
		prog, err := ParseFile(tt.src)
		if err != nil {
			t.Fatalf("%s: %v", tt.src, err)
		}
		v := prog.Items[0].(*ast.FuncDecl).Body.Value()
		got := ""
		if v != nil {
			got = fmt.Sprintf("%T", v)
		}
		if got != tt.want {
			t.Errorf("%s: value %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestCastThenCompare(t *testing.T) {
	e, err := ParseExpr(`x as u8 < y`)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := e.(*ast.Binary)
	if !ok || b.Op != ast.OpLt {
		t.Fatalf("expected comparison, got %s", ast.String(e))
	}
	if _, ok := b.Left.(*ast.Cast); !ok {
		t.Errorf("expected cast on the left, got %T", b.Left)
	}
}

func TestMarkedMethod(t *testing.T) {
	prog, err := ParseFile(`impl Geometry {
    #[fast]
    fn norm2(x: f32, y: f32) -> f32 { x * x + y * y }
}`)
	if err != nil {
		t.Fatal(err)
	}
	impl := prog.Items[0].(*ast.ImplBlock)
	body := impl.Methods[0].Body
	if len(body.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(body.Stmts))
	}
	region, ok := body.Value().(*ast.Region)
	if !ok {
		t.Fatalf("expected the body value to be a region, got %T", body.Value())
	}
	if _, ok := region.Body.(*ast.Block); !ok {
		t.Errorf("expected region over the original block, got %T", region.Body)
	}
}

func TestPositions(t *testing.T) {
	prog, err := ParseFile("fn f() {\n    let x = 1;\n    x += 2;\n}")
	if err != nil {
		t.Fatal(err)
	}
	body := prog.Items[0].(*ast.FuncDecl).Body
	if got := body.Stmts[0].Position(); got != (ast.Pos{Line: 2, Col: 5}) {
		t.Errorf("let: expected 2:5, got %+v", got)
	}
	ca := body.Stmts[1].(*ast.ExprStmt).X.(*ast.CompoundAssign)
	if got := ca.Position(); got != (ast.Pos{Line: 3, Col: 5}) {
		t.Errorf("compound assign: expected 3:5, got %+v", got)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing semicolon", "fn f() { let x = 1 }", "line 1, col 20: expected ;, got }"},
		{"unknown attribute", "#[slow] fn f() {}", `line 1, col 3: unknown attribute "slow"`},
		{"bad item", "let x = 1;", "line 1, col 1: expected fn or impl, got let"},
		{"illegal token", "fn f() { 1.5u8 }", `line 1, col 10: illegal token "1.5u8"`},
		{"fast without block", "fn f() { fast! x }", "line 1, col 16: expected '{' after fast!, got IDENT"},
		{"missing expression", "fn f() { 1 + ; }", "line 1, col 14: expected expression, got ;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			synErr, ok := err.(*SyntaxError)
			if !ok {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if synErr.Errors[0] != tt.want {
				t.Errorf("expected %q, got %q", tt.want, synErr.Errors[0])
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	l := lexer.New(`fn f() { let = 1; let y = 2; } fn g() -> u8 { 1 + }`)
	p := New(l)
	p.ParseProgram()
	if len(p.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(p.Errors()), p.Errors())
	}
}
