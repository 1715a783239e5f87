// Command orion is Orion's command-line front end: it wraps the
// lexer/parser/evaluator pipeline behind a Cobra command tree (run,
// tokenize, ast, repl), replacing the teacher's single-binary
// flag-sniffing main() with the cobra+pflag convention borrowed from the
// pack's devcmd-style CLI harness (SPEC_FULL.md §2's in-scope replacement
// for the distilled spec's out-of-scope web UI).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"orionlang/orion/core"
	"orionlang/orion/internal/config"
	"orionlang/orion/repl"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:     "orion",
		Short:   "Orion language toolchain: run, tokenize, and inspect Orion programs",
		Version: "0.1.0",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	root.AddCommand(runCmd(), tokenizeCmd(), astCmd(), replCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Execute an Orion source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			result := core.Compile(string(src), os.Stdin)
			if result.Err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s", result.Err.Kind, result.Err.Message)
				if result.Err.HasPosition {
					fmt.Fprintf(os.Stderr, " [%d:%d]", result.Err.Line, result.Err.Column)
				}
				fmt.Fprintln(os.Stderr)
				os.Exit(1)
			}
			fmt.Fprint(os.Stdout, result.OK.Output)
			return nil
		},
	}
}

func tokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Print the token stream for an Orion source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tokens, terr := core.Tokenize(string(src))
			if terr != nil {
				return terr
			}
			for _, t := range tokens {
				fmt.Printf("%-4d %-4d %-16s %q\n", t.Line, t.Column, t.Kind, t.Lexeme)
			}
			return nil
		},
	}
}

func astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the parsed AST for an Orion source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text, perr := core.ParseToAST(string(src))
			if perr != nil {
				return perr
			}
			fmt.Print(text)
			return nil
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Orion session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			color.NoColor = cfg.NoColor
			return repl.New(cfg).Start(os.Stdout)
		},
	}
}
