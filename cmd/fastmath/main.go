package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/interp"
	"github.com/raymyers/fastmath/pkg/lower"
	"github.com/raymyers/fastmath/pkg/parser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var version = "0.1.0"

// Debug flags for dumping intermediate trees
var (
	dParse   bool
	dRewrite bool
)

// Lowering and run options
var (
	configPath string
	modeFlag   string
	workers    int
	verbose    bool
	runFunc    string
	runArgs    []string
	plain      bool
)

// Config is the optional YAML configuration file. Flags given on the
// command line override it.
type Config struct {
	Mode    string `yaml:"mode"`
	Workers int    `yaml:"workers"`
	Verbose bool   `yaml:"verbose"`
}

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists the debug flags that also accept single-dash style
var debugFlagNames = []string{"dparse", "drewrite"}

// normalizeFlags converts single-dash debug flags like -dparse to --dparse
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range debugFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fastmath [file]",
		Short: "fastmath rewrites arithmetic into fast-math dispatch calls",
		Long: `fastmath parses a .fm source file, rewrites the arithmetic inside
#[fast] and fast! { } regions into calls on the numeric dispatch
interface, and prints or runs the result.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			filename := args[0]

			cfg, err := loadConfig(cmd, errOut)
			if err != nil {
				return err
			}
			opts, err := cfg.options()
			if err != nil {
				fmt.Fprintf(errOut, "fastmath: %v\n", err)
				return err
			}

			if dParse {
				return doParse(filename, out, errOut)
			}
			if dRewrite {
				return doRewrite(filename, opts, cfg.Verbose, out, errOut)
			}
			if runFunc != "" {
				return doRun(filename, opts, cfg.Verbose, out, errOut)
			}

			_, stats, err := lowerFile(filename, opts, cfg.Verbose, errOut)
			if err != nil {
				return err
			}
			fmt.Fprintf(errOut, "fastmath: %s: %d items, %d regions, %d calls\n",
				filename, stats.Items, stats.Regions, stats.Calls)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().BoolVarP(&dParse, "dparse", "", false, "Dump after parsing")
	rootCmd.Flags().BoolVarP(&dRewrite, "drewrite", "", false, "Dump after fast-math rewriting")

	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file (mode, workers, verbose)")
	rootCmd.Flags().StringVar(&modeFlag, "mode", "marked", "What to rewrite: marked regions or all code")
	rootCmd.Flags().IntVarP(&workers, "workers", "j", 1, "Items rewritten concurrently")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report each rewritten item")
	rootCmd.Flags().StringVar(&runFunc, "run", "", "Run the named function (or Type::method)")
	rootCmd.Flags().StringSliceVar(&runArgs, "args", nil, "Comma-separated arguments for --run")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "With --run, skip rewriting and use checked arithmetic")

	return rootCmd
}

// loadConfig reads --config, if given, and applies explicitly set flags on
// top of it.
func loadConfig(cmd *cobra.Command, errOut io.Writer) (*Config, error) {
	cfg := &Config{Mode: modeFlag, Workers: workers, Verbose: verbose}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			fmt.Fprintf(errOut, "fastmath: error reading %s: %v\n", configPath, err)
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			fmt.Fprintf(errOut, "fastmath: %s: %v\n", configPath, err)
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = modeFlag
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	return cfg, nil
}

func (c *Config) options() (lower.Options, error) {
	mode, err := lower.ParseMode(c.Mode)
	if err != nil {
		return lower.Options{}, err
	}
	return lower.Options{Mode: mode, Workers: c.Workers}, nil
}

// parseFile reads and parses a source file
func parseFile(filename string, errOut io.Writer) (*ast.Program, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "fastmath: error reading %s: %v\n", filename, err)
		return nil, err
	}

	prog, err := parser.ParseFile(string(content))
	if err != nil {
		if se, ok := err.(*parser.SyntaxError); ok {
			for _, e := range se.Errors {
				fmt.Fprintf(errOut, "%s: %s\n", filename, e)
			}
			return nil, fmt.Errorf("parsing failed with %d errors", len(se.Errors))
		}
		fmt.Fprintf(errOut, "%s: %v\n", filename, err)
		return nil, err
	}
	return prog, nil
}

// lowerFile parses and rewrites a source file
func lowerFile(filename string, opts lower.Options, verbose bool, errOut io.Writer) (*ast.Program, *lower.Stats, error) {
	prog, err := parseFile(filename, errOut)
	if err != nil {
		return nil, nil, err
	}
	stats, err := lower.Program(prog, opts)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", filename, err)
		return nil, nil, err
	}
	if verbose {
		for _, name := range stats.Rewritten {
			fmt.Fprintf(errOut, "fastmath: rewrote %s\n", name)
		}
	}
	return prog, stats, nil
}

// doParse parses the file and writes the tree to a .parsed.fm file
func doParse(filename string, out, errOut io.Writer) error {
	prog, err := parseFile(filename, errOut)
	if err != nil {
		return err
	}
	return dump(ast.String(prog), outputFilename(filename, ".parsed.fm"), out, errOut)
}

// doRewrite lowers the file and writes the result to a .fast.fm file
func doRewrite(filename string, opts lower.Options, verbose bool, out, errOut io.Writer) error {
	prog, _, err := lowerFile(filename, opts, verbose, errOut)
	if err != nil {
		return err
	}
	return dump(ast.String(prog), outputFilename(filename, ".fast.fm"), out, errOut)
}

// dump writes text to outputFilename and, for convenience, to out.
func dump(text, outputFilename string, out, errOut io.Writer) error {
	if err := os.WriteFile(outputFilename, []byte(text+"\n"), 0644); err != nil {
		fmt.Fprintf(errOut, "fastmath: error creating %s: %v\n", outputFilename, err)
		return err
	}
	fmt.Fprintln(out, text)
	return nil
}

// doRun evaluates --run with --args and prints the result
func doRun(filename string, opts lower.Options, verbose bool, out, errOut io.Writer) error {
	var prog *ast.Program
	var err error
	if plain {
		prog, err = parseFile(filename, errOut)
	} else {
		prog, _, err = lowerFile(filename, opts, verbose, errOut)
	}
	if err != nil {
		return err
	}

	in, err := interp.New(prog)
	if err != nil {
		fmt.Fprintf(errOut, "fastmath: %v\n", err)
		return err
	}
	args := make([]interp.Value, len(runArgs))
	for i, a := range runArgs {
		v, err := interp.ParseArg(strings.TrimSpace(a))
		if err != nil {
			fmt.Fprintf(errOut, "fastmath: argument %q: %v\n", a, err)
			return err
		}
		args[i] = v
	}

	result, err := in.Call(runFunc, args...)
	if err != nil {
		fmt.Fprintf(errOut, "fastmath: %s: %v\n", runFunc, err)
		return err
	}
	fmt.Fprintln(out, interp.Format(result))
	return nil
}

// outputFilename maps input.fm to input<suffix>
func outputFilename(filename, suffix string) string {
	ext := ".fm"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + suffix
	}
	return filename + suffix
}
