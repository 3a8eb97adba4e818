// ==============================================================================================
// FILE: object/object_benchmark_test.go
// ==============================================================================================
// PURPOSE: Benchmarks for the hot paths of the value model: Display
//          formatting (exercised by `` ` `` and print) and sort-order
//          comparisons (exercised once per element by `$` sorting).
// ==============================================================================================

package object

import "testing"

func BenchmarkArrDisplay(b *testing.B) {
	elems := make([]Value, 100)
	for i := range elems {
		elems[i] = Int{Value: int64(i)}
	}
	arr := Arr{Elements: elems}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arr.Display()
	}
}

func BenchmarkLess_IntStr(b *testing.B) {
	x := Int{Value: 12345}
	y := Str{Value: "99999"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Less(x, y)
	}
}

func BenchmarkUpcastToBlk_NestedArr(b *testing.B) {
	arr := Arr{Elements: []Value{
		Int{Value: 1},
		Arr{Elements: []Value{Int{Value: 2}, Int{Value: 3}}},
		Str{Value: "x"},
	}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = UpcastToBlk(arr)
	}
}
