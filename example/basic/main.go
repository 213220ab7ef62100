// Package main walks through a project setup with text, password and confirm prompts.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nao1215/clack"
	"github.com/spf13/pflag"
)

var schemes = map[string]*clack.ColorScheme{
	"default":        clack.ThemeDefault,
	"dark":           clack.ThemeDark,
	"solarized-dark": clack.ThemeSolarizedDark,
	"accessible":     clack.ThemeAccessible,
	"dracula":        clack.ThemeDracula,
	"monokai":        clack.ThemeMonokai,
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
	var themeName, colorsPath string
	var debug bool

	flagSet := pflag.NewFlagSet("basic", pflag.ContinueOnError)
	flagSet.StringVar(&themeName, "theme", "default", "built-in color scheme (default, dark, solarized-dark, accessible, dracula, monokai)")
	flagSet.StringVar(&colorsPath, "colors", "", "YAML color scheme file, overrides --theme")
	flagSet.BoolVar(&debug, "debug", false, "log redraws to stderr")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	scheme, ok := schemes[themeName]
	if !ok {
		return fmt.Errorf("unknown theme %q", themeName)
	}
	if colorsPath != "" {
		var err error
		if scheme, err = clack.LoadColorScheme(colorsPath); err != nil {
			return err
		}
	}

	options := []clack.Option{clack.WithColorScheme(scheme)}
	if debug {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		options = append(options, clack.WithLogger(logger))
	}

	dir, err := clack.NewInput("Where should we create your project?", options...).
		Default("./sparkling-solid").
		Validate(func(s string) error {
			if !strings.HasPrefix(s, "./") {
				return errors.New("please enter a relative path")
			}
			return nil
		}).
		Interact()
	if err != nil {
		return err
	}

	name, err := clack.NewText("Author name", options...).Placeholder("anonymous").Interact()
	if err != nil {
		return err
	}

	port, err := clack.InteractAs(clack.NewInput("Dev server port", options...).Default("3000"), clack.ParseUint)
	if err != nil {
		return err
	}

	token, err := clack.NewPassword("Registry token", options...).
		Validate(func(s string) error {
			if len(s) < 8 {
				return errors.New("token must be at least 8 characters")
			}
			return nil
		}).
		Interact()
	if err != nil {
		return err
	}

	install, err := clack.NewConfirm("Install dependencies?", options...).InitialValue(true).Interact()
	if err != nil {
		return err
	}

	if name == "" {
		name = "anonymous"
	}
	fmt.Printf("Creating %s for %s on port %d (token: %d characters, install: %t)\n",
		dir, name, port, len(token), install)
	return nil
}
