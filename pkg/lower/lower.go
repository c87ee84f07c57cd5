// Package lower applies fast-math rewriting to a whole program: either to
// the marked regions only or to every item, optionally on several workers.
package lower

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/rewrite"
)

// Mode selects which parts of a program are rewritten
type Mode int

const (
	// ModeMarked rewrites #[fast] items and statements and fast! blocks.
	ModeMarked Mode = iota
	// ModeAll rewrites every item as if the file were one marked region.
	ModeAll
)

func (m Mode) String() string {
	if m == ModeAll {
		return "all"
	}
	return "marked"
}

// ParseMode reads a mode name as used in flags and config files.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "marked":
		return ModeMarked, nil
	case "all":
		return ModeAll, nil
	}
	return ModeMarked, fmt.Errorf("unknown mode %q (want marked or all)", s)
}

// Options configures Program
type Options struct {
	Mode    Mode
	Workers int // items rewritten concurrently; <= 1 means one at a time
}

// Stats summarizes one lowering run
type Stats struct {
	Items     int      // items containing at least one rewritten region
	Regions   int      // regions rewritten (ModeAll counts each item once)
	Calls     int      // dispatch calls emitted
	Rewritten []string // descriptions of the rewritten items, in source order
}

type itemResult struct {
	item    ast.Item
	regions int
	calls   int
}

// Program rewrites prog in place. Items are independent, so each worker
// rewrites its own copy of the item it is given; results are collected by
// index so the output does not depend on scheduling. prog changes only if
// every item rewrites.
func Program(prog *ast.Program, opts Options) (*Stats, error) {
	results := make([]itemResult, len(prog.Items))

	var g errgroup.Group
	g.SetLimit(max(opts.Workers, 1))
	for i, it := range prog.Items {
		i, it := i, it
		g.Go(func() error {
			before := rewrite.Count(it)
			out, regions, err := lowerItem(ast.CloneItem(it), opts.Mode)
			if err != nil {
				return errors.Wrapf(err, "%s", Describe(it))
			}
			results[i] = itemResult{item: out, regions: regions, calls: rewrite.Count(out) - before}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Stats{}
	for i, r := range results {
		prog.Items[i] = r.item
		if r.regions == 0 {
			continue
		}
		stats.Items++
		stats.Regions += r.regions
		stats.Calls += r.calls
		stats.Rewritten = append(stats.Rewritten, Describe(r.item))
	}
	return stats, nil
}

func lowerItem(it ast.Item, mode Mode) (ast.Item, int, error) {
	if mode == ModeAll {
		out, err := rewrite.Item(it)
		if err != nil {
			return nil, 0, err
		}
		return out, 1, nil
	}
	if _, ok := it.(*ast.Region); ok {
		out, err := rewrite.Item(it)
		if err != nil {
			return nil, 0, err
		}
		return out, 1, nil
	}
	var f finder
	if err := f.item(it); err != nil {
		return nil, 0, err
	}
	return it, f.regions, nil
}

// Describe names an item for diagnostics: "fn calc", "impl Geometry".
func Describe(it ast.Item) string {
	switch x := it.(type) {
	case *ast.FuncDecl:
		return "fn " + x.Name
	case *ast.ImplBlock:
		return "impl " + x.Type
	case *ast.Region:
		if body, ok := x.Body.(ast.Item); ok {
			return Describe(body)
		}
	}
	return fmt.Sprintf("item at line %d", it.Position().Line)
}
