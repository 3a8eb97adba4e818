// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Defines the value model for GS. Every item that can sit on the
//          stack, inside an array, or inside a block is a Value. Var and
//          Assign are lexical-only: the lexer emits them but they never
//          live on the stack.
// ==============================================================================================

package object

import (
	"strconv"
	"strings"
)

// Kind identifies the runtime shape of a Value. The operator table
// dispatches on (pairs of) Kind, so the set is closed and small.
type Kind string

const (
	IntKind    Kind = "INT"
	StrKind    Kind = "STR"
	ArrKind    Kind = "ARR"
	BlkKind    Kind = "BLK"
	VarKind    Kind = "VAR"
	AssignKind Kind = "ASSIGN"
)

// Value is the single type every GS item satisfies.
type Value interface {
	Kind() Kind
	// Display renders the value the way `print` and the REPL do.
	Display() string
}

// Int is a 64-bit signed integer.
type Int struct {
	Value int64
}

func (Int) Kind() Kind        { return IntKind }
func (i Int) Display() string { return strconv.FormatInt(i.Value, 10) }

// Str is a Unicode code-point sequence.
type Str struct {
	Value string
}

func (Str) Kind() Kind { return StrKind }
func (s Str) Display() string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(s.Value, "\n", "\\n"))
	b.WriteByte('"')
	return b.String()
}

// Arr is an ordered, owned sequence of Values.
type Arr struct {
	Elements []Value
}

func (Arr) Kind() Kind { return ArrKind }
func (a Arr) Display() string {
	return "[" + joinDisplay(a.Elements, " ") + "]"
}

// Blk is an unevaluated, first-class token sequence.
type Blk struct {
	Tokens []Value
}

func (Blk) Kind() Kind { return BlkKind }
func (b Blk) Display() string {
	return "{" + joinDisplay(b.Tokens, " ") + "}"
}

// Var references a variable or operator name. Emitted only by the lexer.
type Var struct {
	Name string
}

func (Var) Kind() Kind        { return VarKind }
func (v Var) Display() string { return v.Name }

// Assign is the `:name` binding marker. Emitted only by the lexer.
type Assign struct {
	Name string
}

func (Assign) Kind() Kind        { return AssignKind }
func (a Assign) Display() string { return ":" + a.Name }

// Stackable reports whether a Value kind may live on the stack or in an
// array. Var and Assign are lexical-only: they appear only in token
// sequences, including a block's tokens.
func Stackable(v Value) bool {
	switch v.Kind() {
	case IntKind, StrKind, ArrKind, BlkKind:
		return true
	default:
		return false
	}
}

// Truthy implements `!`'s falsy/truthy rule: 0, "", empty Arr/Blk are
// falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Int:
		return x.Value != 0
	case Str:
		return x.Value != ""
	case Arr:
		return len(x.Elements) != 0
	case Blk:
		return len(x.Tokens) != 0
	default:
		return true
	}
}

func joinDisplay(vs []Value, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.Display()
	}
	return strings.Join(parts, sep)
}
