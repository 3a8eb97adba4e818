// ==============================================================================================
// FILE: wasm/wasm_main.go
// BUILD: GOOS=js GOARCH=wasm go build -o main.wasm wasm/wasm_main.go
// ==============================================================================================
package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/lucarin91/golfscript-go/interp"
	"github.com/lucarin91/golfscript-go/lexer"
)

// outputBuffer captures everything `print`/`puts`/`p` write during a run,
// since there is no stdout in a browser tab.
var outputBuffer strings.Builder

func main() {
	c := make(chan struct{}, 0)

	js.Global().Set("runGolfscript", js.FuncOf(runCode))

	fmt.Println("GolfScript WASM engine loaded.")
	<-c
}

// runCode is the bridge between JS and Go: it lexes and executes one GS
// program against a fresh Interp and returns the captured output plus the
// final stack, rendered as its elements' Display forms joined by spaces.
func runCode(this js.Value, p []js.Value) interface{} {
	code := p[0].String()
	outputBuffer.Reset()

	tokens, err := lexer.Lex(code)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	it := interp.NewWithOutput(&outputBuffer)
	if err := it.Exec(tokens); err != nil {
		return map[string]interface{}{
			"error": err.Error(),
			"logs":  outputBuffer.String(),
		}
	}

	parts := make([]string, 0, len(it.Stack()))
	for _, v := range it.Stack() {
		parts = append(parts, v.Display())
	}

	return map[string]interface{}{
		"logs":   outputBuffer.String(),
		"result": strings.Join(parts, " "),
	}
}
