// Package clack provides small, good-looking interactive prompts for
// command line programs.
//
// Each prompt asks one question, redraws only what changed after every key,
// and leaves a one-line summary of the answer on screen when it is done.
//
// Key Features:
//
//   - Text input with optional default, placeholder and validation
//   - Multi-line text input with line-aware cursor navigation
//   - Password input that never draws the typed characters
//   - Yes/No confirmation
//   - Single and multiple choice lists with fuzzy filtering
//   - Typed results through parser functions (int, duration, IP address...)
//   - Color schemes loadable from YAML, degraded to the terminal's color support
//   - Cross-platform compatibility (Windows, macOS, Linux)
//
// Quick Start:
//
//	package main
//
//	import (
//		"errors"
//		"fmt"
//		"log"
//
//		"github.com/nao1215/clack"
//	)
//
//	func main() {
//		name, err := clack.NewInput("What is your name?").
//			Placeholder("Anonymous").
//			Interact()
//		if errors.Is(err, clack.ErrInterrupted) {
//			return
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s!\n", name)
//	}
//
// Choice Lists:
//
//	lang, err := clack.NewSelect[string]("Pick a language").
//		Item("go", "Go", "").
//		Item("rs", "Rust", "").
//		Item("zig", "Zig", "experimental").
//		FilterMode().
//		Interact()
//
// In filter mode typed characters narrow the list. Items are ranked by
// Jaro-Winkler similarity, and an item whose label contains every word of the
// query always ranks above one that does not. Use Matcher to plug in another
// ranking such as SubsequenceMatcher.
//
// Key Bindings:
//
//   - Enter: Submit (insert a line break while editing a multi-line input)
//   - Escape / Ctrl+C: Cancel and return ErrInterrupted
//   - Tab: Switch a multi-line input between edit and view mode
//   - Arrow keys: Move the cursor, the list selection or the Yes/No switch
//   - Ctrl+A / Home, Ctrl+E / End: Move to beginning or end of line
//   - Ctrl+Left/Right, Alt+B/F: Move by word boundaries
//   - Ctrl+W, Alt+Backspace: Delete word backwards
//   - Space: Toggle an item of a multiple choice list
//   - y / n: Answer a confirmation directly
//
// Error Handling:
//
//   - clack.ErrInterrupted: User pressed Escape or Ctrl+C
//   - clack.ErrNotTerminal: Output is not an interactive terminal; no input is read
//   - clack.ErrNoItems: A choice list was started without items
//
// Any other error comes from reading or writing the terminal and ends the
// prompt immediately. Validation failures never leave the prompt: their
// message is shown under the input until the next key.
//
// Testing:
//
// WithTerminal runs a prompt on any Terminal implementation, so programs
// can drive their prompts with scripted keys in tests.
//
// Thread Safety:
//
// Prompts are not thread-safe. Build and run each prompt from a single
// goroutine. A program that modifies the items of a choice list from another
// goroutine must hold its own mutex across the whole Interact call.
package clack
