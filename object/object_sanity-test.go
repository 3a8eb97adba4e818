// ==============================================================================================
// FILE: object/object_sanity-test.go
// ==============================================================================================
// PURPOSE: Sanity checks for the value model.
//          Verifies empty collections behave and upcast is idempotent
//          within its target kind.
// ==============================================================================================

package object

import "testing"

func TestSanity_EmptyCollections(t *testing.T) {
	arr := Arr{Elements: []Value{}}
	if arr.Display() != "[]" {
		t.Errorf("empty array display failed: %q", arr.Display())
	}

	blk := Blk{Tokens: []Value{}}
	if blk.Display() != "{}" {
		t.Errorf("empty block display failed: %q", blk.Display())
	}
}

func TestSanity_UpcastToStr_Idempotent(t *testing.T) {
	v := Str{Value: "abc"}
	once := UpcastToStr(v)
	twice := UpcastToStr(once)
	if once != twice {
		t.Errorf("upcast_to_string not idempotent: %#v vs %#v", once, twice)
	}
}

func TestSanity_DeepEnvironment(t *testing.T) {
	// No lexical scoping chain to stress here, but a single environment
	// should hold many bindings without trouble.
	env := NewEnvironment()
	for i := 0; i < 1000; i++ {
		env.Set(string(rune('a'+i%26)), Int{Value: int64(i)})
	}
	if _, ok := env.Get("a"); !ok {
		t.Fatalf("expected binding for 'a' to survive repeated overwrites")
	}
}
