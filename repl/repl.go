// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop interface. It connects the user input
//          stream to the lexer and a persistent interpreter and echoes the
//          remaining stack after every line.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lucarin91/golfscript-go/interp"
	"github.com/lucarin91/golfscript-go/lexer"
	"github.com/lucarin91/golfscript-go/object"
)

const PROMPT = "> "

// Start launches the Read-Eval-Print Loop. It listens to 'in', evaluates
// each line against a single persistent Interp, and writes results to
// 'out'. Errors are printed and do not reset the stack.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	it := interp.NewWithOutput(out)
	debugMode := false

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch line {
			case ".exit":
				return
			case ".clear":
				it = interp.NewWithOutput(out)
				fmt.Fprintln(out, "stack cleared")
			case ".debug":
				debugMode = !debugMode
				fmt.Fprintf(out, "debug mode: %v\n", debugMode)
			case ".help":
				printHelp(out)
			default:
				fmt.Fprintf(out, "unknown command: %s\n", line)
			}
			continue
		}

		tokens, err := lexer.Lex(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}

		if debugMode {
			printTokens(out, tokens)
		}

		if err := it.Exec(tokens); err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}

		printStack(out, it.Stack())
	}
}

// printStack renders the remaining stack elements the way the REPL
// echoes them after every line: each separated by `|` markers, e.g.
// `| 1 | "hi" |`.
func printStack(out io.Writer, stack []object.Value) {
	var b strings.Builder
	b.WriteString("|")
	for _, v := range stack {
		b.WriteString(" ")
		b.WriteString(v.Display())
		b.WriteString(" |")
	}
	fmt.Fprintln(out, b.String())
}

func printTokens(out io.Writer, tokens []object.Value) {
	fmt.Fprint(out, "tokens:")
	for _, t := range tokens {
		fmt.Fprintf(out, " %s", t.Display())
	}
	fmt.Fprintln(out)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  .exit   quit the REPL")
	fmt.Fprintln(out, "  .clear  reset the stack and environment")
	fmt.Fprintln(out, "  .debug  toggle token-stream echo")
	fmt.Fprintln(out, "  .help   show this message")
}
