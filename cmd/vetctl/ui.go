package main

import (
	"fmt"
	"os"
	"strings"
)

// terminalNotifier renders controller notifications as terminal lines.
type terminalNotifier struct{}

func (terminalNotifier) Success(msg string) {
	fmt.Printf("%s %s\n", colorGreen("✓"), msg)
}

func (terminalNotifier) Error(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorRed("✗"), msg)
}

// terminalPrompter asks confirmations interactively, unless --force
// answered them in advance.
type terminalPrompter struct {
	force bool
}

func (p terminalPrompter) Confirm(question string) bool {
	if p.force {
		return true
	}
	return confirm(question)
}

// terminalNavigator has no routes to change; it prints the follow-up
// command for the destination a web front-end would redirect to.
type terminalNavigator struct{}

func (terminalNavigator) NavigateTo(route string) {
	switch {
	case route == "/":
		fmt.Println("Next: vetctl owners list")
	case route == "/login":
		fmt.Println("Next: vetctl login")
	case strings.HasPrefix(route, "/owners/"):
		fmt.Printf("Next: vetctl owners get %s\n", strings.TrimPrefix(route, "/owners/"))
	case strings.HasPrefix(route, "/animals/"):
		fmt.Printf("Next: vetctl animals get %s\n", strings.TrimPrefix(route, "/animals/"))
	}
}
