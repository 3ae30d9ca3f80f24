package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"econlab/internal/config"
	"econlab/internal/scenario"
	"econlab/internal/sweep"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "solve":
		cmdSolve(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	case "catalog":
		cmdCatalog()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli solve --module market --op monopoly --param intercept=100 --param marginal_cost=20")
	fmt.Println("  cli solve --config examples/monopoly.yaml")
	fmt.Println("  cli sweep --config examples/monopoly.yaml --out results/sweep.csv")
	fmt.Println("  cli catalog")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - solve prints one metric per line")
	fmt.Println("  - sweep writes one CSV row per swept value")
	fmt.Println("  - catalog lists modules, operations and parameter defaults")
}

// paramFlags collects repeated --param name=value flags.
type paramFlags map[string]float64

func (p paramFlags) String() string { return fmt.Sprintf("%v", map[string]float64(p)) }

func (p paramFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	p[strings.TrimSpace(name)] = v
	return nil
}

func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	module := fs.String("module", "", "Module name (e.g. market)")
	op := fs.String("op", "", "Operation name (e.g. monopoly)")
	seed := fs.Int64("seed", 0, "Random seed for sampling operations (0=time-seeded)")
	params := paramFlags{}
	fs.Var(params, "param", "Parameter as name=value (repeatable)")
	_ = fs.Parse(args)

	sc := scenario.Scenario{Module: *module, Operation: *op, Params: params, Seed: *seed}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		sc = cfg.ToScenario()
		for k, v := range params {
			if sc.Params == nil {
				sc.Params = map[string]float64{}
			}
			sc.Params[k] = v
		}
		if *seed != 0 {
			sc.Seed = *seed
		}
	}
	if sc.Module == "" || sc.Operation == "" {
		fmt.Println("--module and --op (or --config) are required")
		os.Exit(2)
	}

	metrics, err := scenario.Evaluate(sc)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%s/%s\n", sc.Module, sc.Operation)
	for _, m := range metrics {
		fmt.Printf("  %-28s %12.6f\n", m.Name, m.Value)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config with a sweep section")
	outPath := fs.String("out", "", "Output CSV path (overrides config output)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	if cfg.Sweep == nil {
		fmt.Println("config has no sweep section")
		os.Exit(2)
	}

	res, err := sweep.Run(cfg.ToSweepSpec())
	if err != nil {
		fatal(err)
	}

	out := cfg.Output
	if *outPath != "" {
		out = *outPath
	}
	if out == "" {
		out = "results/sweep.csv"
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fatal(err)
	}
	if err := sweep.WriteCSV(out, res); err != nil {
		fatal(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), out)
	fmt.Printf("Swept %s/%s over %s in [%g, %g]\n",
		res.Module, res.Operation, res.Parameter,
		res.Rows[0].Value, res.Rows[len(res.Rows)-1].Value)
}

func cmdCatalog() {
	for _, mod := range scenario.Catalog() {
		fmt.Printf("%s - %s\n", mod.Name, mod.Description)
		for _, op := range mod.Operations {
			fmt.Printf("  %s\n", op.Name)
			for _, p := range op.Params {
				fmt.Printf("    %-24s default=%-10g range=[%g, %g]\n", p.Name, p.Default, p.Min, p.Max)
			}
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
