// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"ssac/internal/compiler"
	"ssac/internal/errors"
	"ssac/internal/ir"
)

const PROMPT = ">> "

const (
	commandRaw   = ":raw"
	commandReset = ":reset"
	commandQuit  = ":quit"
)

// Start reads statements from in, one per line, and prints the optimized IR
// of everything entered so far after each. A line that fails to compile is
// reported and discarded.
func Start(in io.Reader, out io.Writer, options compiler.Options) {
	scanner := bufio.NewScanner(in)
	var session []string

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case commandQuit:
			return
		case commandReset:
			session = nil
			fmt.Fprintln(out, "session cleared")
			continue
		case commandRaw:
			if result := compile(out, session, options); result != nil {
				fmt.Fprint(out, ir.Print(result.Raw))
			}
			continue
		}

		candidate := append(session[:len(session):len(session)], line)
		result := compile(out, candidate, options)
		if result == nil {
			continue
		}
		session = candidate
		fmt.Fprint(out, ir.Print(result.Optimized))
	}
}

func compile(out io.Writer, lines []string, options compiler.Options) *compiler.Result {
	source := strings.Join(lines, "\n") + "\n"
	unit := compiler.Unit{Path: "<repl>", Source: source}

	result, err := compiler.Compile(context.Background(), unit, options)
	if err != nil {
		reporter := errors.NewErrorReporter(unit.Path, source)
		fmt.Fprint(out, reporter.FormatErrors(compiler.Diagnostics(err, source)))
		return nil
	}
	return result
}
