// ==============================================================================================
// FILE: object/coerce.go
// PACKAGE: object
// PURPOSE: The upcast lattice, Blk > Str > Arr > Int, and the symmetric
//          coercion used by binary operators whose operands differ in kind.
// ==============================================================================================

package object

import (
	"fmt"
	"strings"
)

// UpcastToArr promotes Int/Arr to Arr. Any other kind is a programmer error:
// callers only invoke this once Coerce has selected Arr as the target kind.
func UpcastToArr(v Value) Value {
	switch x := v.(type) {
	case Int:
		return Arr{Elements: []Value{x}}
	case Arr:
		return x
	default:
		panic(fmt.Sprintf("upcast_to_array only accepts Int, Arr; got %T", v))
	}
}

// UpcastToStr promotes Int/Arr/Str to Str. An Int inside an Arr is
// interpreted as a Unicode code point.
func UpcastToStr(v Value) Value {
	switch x := v.(type) {
	case Int:
		return Str{Value: x.Display()}
	case Str:
		return x
	case Arr:
		var sb strings.Builder
		for _, el := range x.Elements {
			if n, ok := el.(Int); ok {
				sb.WriteRune(rune(n.Value))
				continue
			}
			sb.WriteString(UpcastToStr(el).(Str).Value)
		}
		return Str{Value: sb.String()}
	default:
		panic(fmt.Sprintf("upcast_to_string only accepts Int, Arr, Str; got %T", v))
	}
}

// UpcastToBlk promotes Int/Str/Arr/Blk to Blk. Arr flattens one level per
// element: each element's own upcast-to-block is spliced in rather than
// nested, so a two-level Arr collapses to a single flat token sequence.
func UpcastToBlk(v Value) Value {
	switch x := v.(type) {
	case Int:
		return Blk{Tokens: []Value{x}}
	case Str:
		return Blk{Tokens: []Value{x}}
	case Blk:
		return x
	case Arr:
		var tokens []Value
		for _, el := range x.Elements {
			sub := UpcastToBlk(el).(Blk)
			tokens = append(tokens, sub.Tokens...)
		}
		return Blk{Tokens: tokens}
	default:
		panic(fmt.Sprintf("upcast_to_block only accepts Int, Str, Arr, Blk; got %T", v))
	}
}

// Coerce applies the upcast lattice symmetrically to a pair, preserving
// the caller's (below, top) ordering in the returned pair: whichever
// operand has the higher-ranked kind pulls the other one up to match.
func Coerce(below, top Value) (Value, Value) {
	if below.Kind() == BlkKind || top.Kind() == BlkKind {
		return UpcastToBlk(below), UpcastToBlk(top)
	}
	if below.Kind() == StrKind || top.Kind() == StrKind {
		return UpcastToStr(below), UpcastToStr(top)
	}
	if below.Kind() == ArrKind || top.Kind() == ArrKind {
		return UpcastToArr(below), UpcastToArr(top)
	}
	return below, top
}
