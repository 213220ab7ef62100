// Package main demonstrates multiline input with a commit message prompt.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/clack"
)

func main() {
	fmt.Println("Multiline Input Example")
	fmt.Println("  - Enter inserts a line break")
	fmt.Println("  - Tab switches between editing and viewing")
	fmt.Println("  - Enter while viewing submits")
	fmt.Println()

	message, err := clack.NewInput("Commit message").
		Multiline().
		Validate(func(s string) error {
			subject, _, _ := strings.Cut(s, "\n")
			if len(subject) > 72 {
				return errors.New("keep the subject line under 72 characters")
			}
			return nil
		}).
		Interact()
	if err != nil {
		if errors.Is(err, clack.ErrInterrupted) {
			fmt.Println("Aborted.")
			return
		}
		log.Fatal(err)
	}

	// Display the input with line numbers
	fmt.Println("\n--- Your input ---")
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		fmt.Printf("%3d: %s\n", i+1, line)
	}
	fmt.Printf("\nTotal lines: %d\n", len(lines))
	fmt.Printf("Total characters: %d\n", len(message))
	fmt.Println("--- End of input ---")
}
