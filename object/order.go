// ==============================================================================================
// FILE: object/order.go
// PACKAGE: object
// PURPOSE: The total order over Values, used by the `$` sort operator,
//          and the kind-sensitive equality used by `=` and by the Arr
//          set/split operators (`-`, `|`, `&`, `^`, `/`).
// ==============================================================================================

package object

// Less implements the total order required by `$`:
//   - Int/Int numeric, Str/Str lexicographic
//   - Int/Str compared as decimal text (Int stringified)
//   - every other pairing (Arr/Arr, Blk/Blk, cross-kind besides Int/Str) is equal
func Less(a, b Value) bool {
	return compare(a, b) < 0
}

// compare returns -1, 0, or 1.
func compare(a, b Value) int {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return cmpInt64(x.Value, y.Value)
		case Str:
			return cmpString(x.Display(), y.Value)
		}
	case Str:
		switch y := b.(type) {
		case Str:
			return cmpString(x.Value, y.Value)
		case Int:
			return cmpString(x.Value, y.Display())
		}
	}
	return 0
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal implements `=`'s kind-sensitive equality: same kind required,
// Arr/Blk compared element-wise, no numeric-string coercion.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Int:
		return x.Value == b.(Int).Value
	case Str:
		return x.Value == b.(Str).Value
	case Arr:
		return equalSeq(x.Elements, b.(Arr).Elements)
	case Blk:
		return equalSeq(x.Tokens, b.(Blk).Tokens)
	default:
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
