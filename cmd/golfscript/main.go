// ==============================================================================================
// FILE: cmd/golfscript/main.go
// ==============================================================================================
// PURPOSE: CLI entry point. Script mode runs a file to completion and
//          prints the final stack; otherwise starts the REPL.
// ==============================================================================================

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lucarin91/golfscript-go/interp"
	"github.com/lucarin91/golfscript-go/lexer"
	"github.com/lucarin91/golfscript-go/repl"
)

func main() {
	file := flag.String("file", "", "run a GS script file instead of starting the REPL")
	debug := flag.Bool("debug", false, "echo each token as it is lexed")
	seed := flag.Int64("seed", 0, "seed the rand builtin for reproducible runs (0 = time-based)")
	flag.Parse()

	if *file == "" && flag.NArg() > 0 {
		*file = flag.Arg(0)
	}

	if *file != "" {
		if err := runFile(*file, *debug, *seed); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	repl.Start(os.Stdin, os.Stdout)
}

func runFile(filename string, debug bool, seed int64) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	tokens, err := lexer.Lex(string(data))
	if err != nil {
		return err
	}

	if debug {
		for _, t := range tokens {
			fmt.Fprintf(os.Stderr, "token: %s\n", t.Display())
		}
	}

	it := interp.New()
	if seed != 0 {
		it.SetSeed(seed)
	}

	if err := it.Exec(tokens); err != nil {
		return err
	}

	for _, v := range it.Stack() {
		fmt.Println(v.Display())
	}
	return nil
}
