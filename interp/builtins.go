// ==============================================================================================
// FILE: interp/builtins.go
// PACKAGE: interp
// PURPOSE: Named built-ins and the predefined block bindings installed
//          at interpreter construction. `and`/`or`/
//          `xor`/`puts`/`p` are installed as ordinary Blk values in the
//          environment rather than hard-wired into the dispatch table —
//          execVar already runs any env-bound Blk, so these get the same
//          treatment a user-defined `:name` binding would.
// ==============================================================================================

package interp

import (
	"fmt"

	"github.com/lucarin91/golfscript-go/object"
)

var namedBuiltins = map[string]func(*Interp) error{
	"abs":   builtinAbs,
	"if":    builtinIf,
	"rand":  builtinRand,
	"print": builtinPrint,
	"n":     builtinNewline,
}

func builtinAbs(it *Interp) error {
	v, err := it.pop()
	if err != nil {
		return err
	}
	n, ok := v.(object.Int)
	if !ok {
		return errRuntimef("invalid type for 'abs': %s", v.Kind())
	}
	if n.Value < 0 {
		it.push(object.Int{Value: -n.Value})
	} else {
		it.push(n)
	}
	return nil
}

// builtinIf is the block-aware variant: pop else (top), then then, then
// cond; if the chosen branch is a Blk, execute it instead of pushing it
// as a value.
func builtinIf(it *Interp) error {
	elseVal, err := it.pop()
	if err != nil {
		return err
	}
	thenVal, err := it.pop()
	if err != nil {
		return err
	}
	cond, err := it.pop()
	if err != nil {
		return err
	}

	chosen := elseVal
	if object.Truthy(cond) {
		chosen = thenVal
	}
	if blk, ok := chosen.(object.Blk); ok {
		return it.execItems(blk.Tokens)
	}
	it.push(chosen)
	return nil
}

func builtinRand(it *Interp) error {
	v, err := it.pop()
	if err != nil {
		return err
	}
	n, ok := v.(object.Int)
	if !ok {
		return errRuntimef("invalid type for 'rand': %s", v.Kind())
	}
	if n.Value == 0 {
		return errRuntimef("invalid random range: [0, 0)")
	}
	if n.Value < 0 {
		it.push(object.Int{Value: n.Value + it.rng.Int63n(-n.Value)})
		return nil
	}
	it.push(object.Int{Value: it.rng.Int63n(n.Value)})
	return nil
}

// builtinPrint writes the display form without a trailing newline. A Str
// is written quoted with newlines escaped, so `puts = { print n print }`
// writes `"hi""\n"` for "hi" rather than a raw line break.
func builtinPrint(it *Interp) error {
	v, err := it.pop()
	if err != nil {
		return err
	}
	fmt.Fprint(it.out, v.Display())
	return nil
}

func builtinNewline(it *Interp) error {
	it.push(object.Str{Value: "\n"})
	return nil
}

// installPredefined binds and/or/xor/puts/p as token sequences composed
// from the operators and built-ins already defined. `zip` is
// intentionally left unbound, reserved for future use, so calling it
// raises the ordinary undefined-variable error.
func installPredefined(env *object.Environment) {
	env.Set("and", object.Blk{Tokens: []object.Value{
		object.Int{Value: 1}, object.Var{Name: "$"}, object.Var{Name: "if"},
	}})
	env.Set("or", object.Blk{Tokens: []object.Value{
		object.Int{Value: 1}, object.Var{Name: "$"}, object.Var{Name: "\\"}, object.Var{Name: "if"},
	}})
	env.Set("xor", object.Blk{Tokens: []object.Value{
		object.Var{Name: "\\"}, object.Var{Name: "!"}, object.Var{Name: "!"},
		object.Blk{Tokens: []object.Value{object.Var{Name: "!"}}},
		object.Var{Name: "*"},
	}})
	env.Set("puts", object.Blk{Tokens: []object.Value{
		object.Var{Name: "print"}, object.Var{Name: "n"}, object.Var{Name: "print"},
	}})
	env.Set("p", object.Blk{Tokens: []object.Value{
		object.Var{Name: "`"}, object.Var{Name: "puts"},
	}})
}
