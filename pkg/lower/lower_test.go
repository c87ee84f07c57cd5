package lower

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/parser"
	"github.com/raymyers/fastmath/pkg/rewrite"
)

const sample = `impl Geometry {
    fn norm2(x: f32, y: f32) -> f32 { x * x + y * y }
}

#[fast]
fn calc(a: u32, b: u32) -> u32 { a * b + a - b }

fn squares(n: u16) -> u16 {
    let mut sum: u16 = 0;
    #[fast]
    for i in 0..=n { sum += i * i; }
    sum + 0
}

fn pair(a: u32, b: u32) -> u32 { fast! { (a) + (b) } }
`

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return prog
}

func TestMarked(t *testing.T) {
	prog := mustParse(t, sample)
	stats, err := Program(prog, Options{Mode: ModeMarked})
	if err != nil {
		t.Fatal(err)
	}

	want := `impl Geometry {
  fn norm2(x: f32, y: f32) -> f32 {
    x * x + y * y
  }
}

fn calc(a: u32, b: u32) -> u32 {
  Dispatch::fast_sub(Dispatch::fast_add(Dispatch::fast_mul(a, b), a), b)
}

fn squares(n: u16) -> u16 {
  let mut sum: u16 = 0;
  for i in 0..=n {
    sum = Dispatch::fast_add(sum, Dispatch::fast_mul(i, i));
  }
  sum + 0
}

fn pair(a: u32, b: u32) -> u32 {
  {
    Dispatch::fast_add(a, b)
  }
}`
	if got := ast.String(prog); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	if stats.Items != 3 || stats.Regions != 3 || stats.Calls != 6 {
		t.Errorf("unexpected stats %+v", stats)
	}
	wantNames := []string{"fn calc", "fn squares", "fn pair"}
	if strings.Join(stats.Rewritten, ",") != strings.Join(wantNames, ",") {
		t.Errorf("rewritten: got %v, want %v", stats.Rewritten, wantNames)
	}
}

func TestAll(t *testing.T) {
	prog := mustParse(t, sample)
	stats, err := Program(prog, Options{Mode: ModeAll})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Items != 4 {
		t.Errorf("expected 4 items, got %d", stats.Items)
	}
	// norm2 adds three calls and squares' trailing sum + 0 one more.
	if stats.Calls != 10 {
		t.Errorf("expected 10 calls, got %d", stats.Calls)
	}
	ast.Inspect(prog, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.Region:
			t.Errorf("region survived at %+v", x.Pos)
		case *ast.Binary:
			if _, ok := rewrite.MethodFor(x.Op); ok {
				t.Errorf("%s survived at %+v", x.Op, x.Pos)
			}
		}
		return true
	})
}

func TestMarkedMethod(t *testing.T) {
	prog := mustParse(t, `impl V {
    #[fast]
    fn twice(x: i8) -> i8 { x * 2 }
    fn thrice(x: i8) -> i8 { x * 3 }
}`)
	stats, err := Program(prog, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := `impl V {
  fn twice(x: i8) -> i8 {
    {
      Dispatch::fast_mul(x, 2)
    }
  }

  fn thrice(x: i8) -> i8 {
    x * 3
  }
}`
	if got := ast.String(prog); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if stats.Regions != 1 || stats.Calls != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestConcurrentMatchesSequential(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		if i%3 == 0 {
			sb.WriteString("#[fast]\n")
		}
		fmt.Fprintf(&sb, "fn f%d(a: i64, b: i64) -> i64 {\n", i)
		fmt.Fprintf(&sb, "    let mut x = a * %d + b;\n", i)
		sb.WriteString("    #[fast]\n    x <<= 1;\n")
		sb.WriteString("    x % (b - a)\n}\n")
	}
	src := sb.String()

	for _, mode := range []Mode{ModeMarked, ModeAll} {
		t.Run(mode.String(), func(t *testing.T) {
			seq := mustParse(t, src)
			seqStats, err := Program(seq, Options{Mode: mode, Workers: 1})
			if err != nil {
				t.Fatal(err)
			}
			par := mustParse(t, src)
			parStats, err := Program(par, Options{Mode: mode, Workers: 8})
			if err != nil {
				t.Fatal(err)
			}
			if ast.String(seq) != ast.String(par) {
				t.Error("concurrent lowering produced a different tree")
			}
			if fmt.Sprint(seqStats) != fmt.Sprint(parStats) {
				t.Errorf("stats differ: %+v vs %+v", seqStats, parStats)
			}
		})
	}
}

func TestErrorNamesItem(t *testing.T) {
	prog := mustParse(t, `fn ok(a: i32) -> i32 { a }
#[fast]
fn bad(a: i32) -> i32 {
    (a + 1) += 2;
    a
}`)
	before := ast.String(prog)
	for _, workers := range []int{1, 4} {
		_, err := Program(prog, Options{Workers: workers})
		if !errors.Is(err, rewrite.ErrNotAssignable) {
			t.Fatalf("expected ErrNotAssignable, got %v", err)
		}
		want := "fn bad: line 4, col 5: compound assignment target is not assignable"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
		if got := ast.String(prog); got != before {
			t.Errorf("failed lowering changed the program:\n%s", got)
		}
	}
}

func TestFailureLeavesOtherItems(t *testing.T) {
	prog := mustParse(t, `#[fast]
fn good(a: i32) -> i32 { a * 2 }
fn bad(a: i32) -> i32 {
    fast! { a += 1 };
    fast! { (a) *= 2 };
    (a + 1) += 2;
    a
}`)
	before := ast.String(prog)
	if _, err := Program(prog, Options{Mode: ModeAll, Workers: 2}); !errors.Is(err, rewrite.ErrNotAssignable) {
		t.Fatalf("expected ErrNotAssignable, got %v", err)
	}
	if got := ast.String(prog); got != before {
		t.Errorf("expected the program untouched, got:\n%s", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeMarked, false},
		{"marked", ModeMarked, false},
		{"all", ModeAll, false},
		{"everything", ModeMarked, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	prog := mustParse(t, "#[fast]\nimpl Geometry { }\nfn f() {}")
	if got := Describe(prog.Items[0]); got != "impl Geometry" {
		t.Errorf("got %q", got)
	}
	if got := Describe(prog.Items[1]); got != "fn f" {
		t.Errorf("got %q", got)
	}
}
