// ==============================================================================================
// FILE: object/object_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for the Value variants: Display, Truthy, Stackable.
// ==============================================================================================

package object

import "testing"

func TestDisplay_Int(t *testing.T) {
	if got := (Int{Value: -7}).Display(); got != "-7" {
		t.Errorf("Int.Display() = %q, want -7", got)
	}
}

func TestDisplay_Str_EscapesNewline(t *testing.T) {
	got := (Str{Value: "a\nb"}).Display()
	want := `"a\nb"`
	if got != want {
		t.Errorf("Str.Display() = %q, want %q", got, want)
	}
}

func TestDisplay_Arr(t *testing.T) {
	a := Arr{Elements: []Value{Int{Value: 1}, Int{Value: 2}, Int{Value: 3}}}
	if got := a.Display(); got != "[1 2 3]" {
		t.Errorf("Arr.Display() = %q, want [1 2 3]", got)
	}
}

func TestDisplay_Blk(t *testing.T) {
	b := Blk{Tokens: []Value{Int{Value: 1}, Var{Name: "+"}}}
	if got := b.Display(); got != "{1 +}" {
		t.Errorf("Blk.Display() = %q, want {1 +}", got)
	}
}

func TestDisplay_Assign(t *testing.T) {
	if got := (Assign{Name: "plus"}).Display(); got != ":plus" {
		t.Errorf("Assign.Display() = %q, want :plus", got)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"zero", Int{Value: 0}, false},
		{"nonzero", Int{Value: 1}, true},
		{"empty str", Str{Value: ""}, false},
		{"nonempty str", Str{Value: "x"}, true},
		{"empty arr", Arr{}, false},
		{"nonempty arr", Arr{Elements: []Value{Int{Value: 0}}}, true},
		{"empty blk", Blk{}, false},
		{"nonempty blk", Blk{Tokens: []Value{Int{Value: 0}}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Truthy(c.v); got != c.want {
				t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestStackable(t *testing.T) {
	if !Stackable(Int{}) || !Stackable(Str{}) || !Stackable(Arr{}) || !Stackable(Blk{}) {
		t.Errorf("Int/Str/Arr/Blk must be stackable")
	}
	if Stackable(Var{Name: "x"}) || Stackable(Assign{Name: "x"}) {
		t.Errorf("Var/Assign must not be stackable")
	}
}
