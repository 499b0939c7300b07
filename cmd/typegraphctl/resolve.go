package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"typegraph"
	"typegraph/internal/fixtures"
	"typegraph/model"
)

func newResolveCmd() *cobra.Command {
	var scenario string
	var jobs int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a built-in scenario fixture and print the type graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if jobs != 0 {
				cfg.Jobs = jobs
			}
			if verbose {
				cfg.Verbose = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			s, ok := fixtures.Named(scenario)
			if !ok {
				return fmt.Errorf("unknown scenario %q (known: %s)", scenario, strings.Join(fixtures.Names(), ", "))
			}

			types, functions, typealiases := typegraph.UniqueTypesAndFunctionsWithOptions(s.Result, typegraph.Options{Jobs: cfg.Jobs})
			printReport(cmd, s, types, functions, typealiases, cfg.Verbose)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "S1", fmt.Sprintf("scenario to resolve (%s)", strings.Join(fixtures.Names(), ", ")))
	cmd.Flags().IntVar(&jobs, "jobs", 0, "worker pool size for the Member Resolver (0 = the config file's jobs, else GOMAXPROCS)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "list each type's variables in the report")
	return cmd
}

func printReport(cmd *cobra.Command, s fixtures.Scenario, types []model.Type, functions []*model.Method, typealiases []*model.Typealias, verbose bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", s.Name, s.Description)

	fmt.Fprintf(out, "types (%d):\n", len(types))
	for _, t := range types {
		h := t.Header()
		fmt.Fprintf(out, "  %s (%s)\n", h.GlobalName, t.Kind())
		if verbose {
			printMembers(out, t)
		}
	}

	fmt.Fprintf(out, "functions (%d):\n", len(functions))
	for _, fn := range functions {
		fmt.Fprintf(out, "  %s\n", fn.Name)
	}

	fmt.Fprintf(out, "typealiases (%d):\n", len(typealiases))
	for _, a := range typealiases {
		target := "<unresolved>"
		if a.Type != nil {
			target = a.Type.Header().GlobalName
		}
		fmt.Fprintf(out, "  %s -> %s\n", a.GlobalName(), target)
	}
}

func printMembers(out io.Writer, t model.Type) {
	h := t.Header()
	for _, v := range sortedVariableNames(h.Variables) {
		fmt.Fprintf(out, "    var %s\n", v)
	}
}

func sortedVariableNames(variables []*model.Variable) []string {
	names := make([]string, len(variables))
	for i, v := range variables {
		names[i] = v.Name
	}
	sort.Strings(names)
	return names
}
