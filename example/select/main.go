// Package main picks a command from a filterable list.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nao1215/clack"
	"github.com/spf13/pflag"
)

var commands = []clack.Choice[string]{
	{Value: "help", Label: "help", Hint: "Show help information"},
	{Value: "list", Label: "list", Hint: "List all items"},
	{Value: "create", Label: "create", Hint: "Create a new item"},
	{Value: "delete", Label: "delete", Hint: "Delete an existing item"},
	{Value: "update", Label: "update", Hint: "Update an existing item"},
	{Value: "status", Label: "status", Hint: "Show current status"},
	{Value: "exit", Label: "exit", Hint: "Exit the program"},
}

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
	var filter, subsequence bool
	var window int
	var initial string

	flagSet := pflag.NewFlagSet("select", pflag.ContinueOnError)
	flagSet.BoolVarP(&filter, "filter", "f", true, "narrow the list by typing")
	flagSet.BoolVar(&subsequence, "subsequence", false, "match characters in order instead of by similarity")
	flagSet.IntVarP(&window, "window", "w", 0, "number of visible items (0: fit the terminal)")
	flagSet.StringVar(&initial, "initial", "list", "initially highlighted command")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	s := clack.NewSelect[string]("Pick a command").
		Items(commands...).
		InitialValue(initial).
		WindowSize(window)
	if filter {
		s.FilterMode()
	}
	if subsequence {
		s.Matcher(clack.SubsequenceMatcher{})
	}

	command, err := s.Interact()
	if err != nil {
		return err
	}

	switch command {
	case "status":
		fmt.Println("Status: Running")
	case "list":
		fmt.Println("Items: item1, item2, item3")
	default:
		fmt.Printf("Executed: %s\n", command)
	}
	return nil
}
