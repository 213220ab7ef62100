// Package main selects tooling for a new project.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nao1215/clack"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, clack.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var filter, required bool
	var preselect []string

	flagSet := pflag.NewFlagSet("multiselect", pflag.ContinueOnError)
	flagSet.BoolVarP(&filter, "filter", "f", false, "narrow the list by typing")
	flagSet.BoolVar(&required, "required", false, "reject an empty selection")
	flagSet.StringSliceVar(&preselect, "preselect", []string{"prettier"}, "tools selected initially")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	m := clack.NewMultiSelect[string]("Select additional tools").
		Item("eslint", "ESLint", "recommended").
		Item("prettier", "Prettier", "").
		Item("gh-action", "GitHub Action", "").
		Item("vitest", "Vitest", "").
		Item("husky", "Husky", "git hooks").
		InitialValues(preselect...).
		Required(required)
	if filter {
		m.FilterMode()
	}

	tools, err := m.Interact()
	if err != nil {
		return err
	}

	if len(tools) == 0 {
		fmt.Println("No additional tools.")
		return nil
	}
	fmt.Printf("Installing %s\n", strings.Join(tools, ", "))
	return nil
}
