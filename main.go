// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"ssac/internal/compiler"
	"ssac/internal/config"
	"ssac/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	cfg, err := config.Find(".")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the ssac REPL, %s! Type :raw, :reset or :quit.\n", currentUser.Username)
	repl.Start(os.Stdin, os.Stdout, compiler.Options{Pipeline: cfg.Optimize})
}
