// ==============================================================================================
// FILE: interp/interp_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for individual operators. Also contains the shared
//          run() helper used by the integration and sanity suites.
// ==============================================================================================

package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucarin91/golfscript-go/lexer"
	"github.com/lucarin91/golfscript-go/object"
)

// run lexes and executes src against a fresh Interp, failing the test on
// either a lex or an exec error, and returns the final stack.
func run(t *testing.T, src string) []object.Value {
	t.Helper()
	tokens, err := lexer.Lex(src)
	require.NoError(t, err)
	it := New()
	require.NoError(t, it.Exec(tokens))
	return it.Stack()
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	tokens, err := lexer.Lex(src)
	require.NoError(t, err)
	it := New()
	return it.Exec(tokens)
}

func TestAdd_IntInt(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 12}}, run(t, "5 7+"))
}

func TestAdd_StrStr_ConcatBelowThenTop(t *testing.T) {
	require.Equal(t, []object.Value{object.Str{Value: "ab"}}, run(t, `"a""b"+`))
}

func TestSub_ArrArr(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 1}, object.Int{Value: 3},
	}}}, run(t, "[1 2 3][2]-"))
}

func TestNot_Truthy(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 1}}, run(t, "0!"))
	require.Equal(t, []object.Value{object.Int{Value: 0}}, run(t, "5!"))
}

func TestRot_At(t *testing.T) {
	require.Equal(t, []object.Value{
		object.Int{Value: 1}, object.Int{Value: 3}, object.Int{Value: 4}, object.Int{Value: 2},
	}, run(t, "1 2 3 4@"))
}

func TestDollar_SortArr(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 1}, object.Int{Value: 2}, object.Int{Value: 3},
	}}}, run(t, "[3 1 2]$"))
}

func TestDollar_IndexFromTop(t *testing.T) {
	require.Equal(t, []object.Value{
		object.Int{Value: 1}, object.Int{Value: 2}, object.Int{Value: 1},
	}, run(t, "1 2 1$"))
}

func TestMul_IntInt(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 20}}, run(t, "4 5*"))
}

func TestMul_RepeatStr(t *testing.T) {
	require.Equal(t, []object.Value{object.Str{Value: "hihihi"}}, run(t, `"hi"3*`))
}

func TestMul_NegativeRepeatIsRuntimeError(t *testing.T) {
	require.Error(t, runErr(t, `"hi"-1*`))
}

func TestMul_JoinArrStr(t *testing.T) {
	require.Equal(t, []object.Value{object.Str{Value: "1-2-3"}}, run(t, `[1 2 3]"-"*`))
}

func TestDiv_IntInt(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 3}}, run(t, "7 2/"))
}

func TestDiv_ByZeroIsRuntimeError(t *testing.T) {
	require.Error(t, runErr(t, "7 0/"))
}

func TestDiv_ChunkArr(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Arr{Elements: []object.Value{object.Int{Value: 1}, object.Int{Value: 2}}},
		object.Arr{Elements: []object.Value{object.Int{Value: 3}}},
	}}}, run(t, "[1 2 3]2/"))
}

func TestMod_EveryNth(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 0}, object.Int{Value: 2}, object.Int{Value: 4},
	}}}, run(t, "[0 1 2 3 4]2%"))
}

func TestMod_EveryNthNegativeReverses(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 4}, object.Int{Value: 2}, object.Int{Value: 0},
	}}}, run(t, "[0 1 2 3 4]-2%"))
}

func TestTilde_Int(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: -6}}, run(t, "5~"))
}

func TestTilde_Array(t *testing.T) {
	require.Equal(t, []object.Value{
		object.Int{Value: 1}, object.Int{Value: 2}, object.Int{Value: 3},
	}, run(t, "[1 2 3]~"))
}

func TestBacktick(t *testing.T) {
	require.Equal(t, []object.Value{object.Str{Value: "5"}}, run(t, "5`"))
}

func TestOr_ArrUnion_TopFirst(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 2}, object.Int{Value: 3}, object.Int{Value: 1},
	}}}, run(t, "[1 2][2 3]|"))
}

func TestAnd_ArrIntersection(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 2},
	}}}, run(t, "[1 2][2 3]&"))
}

func TestXor_ArrSymmetricDifference(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 1}, object.Int{Value: 3},
	}}}, run(t, "[1 2][2 3]^"))
}

func TestSwap(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 2}, object.Int{Value: 1}}, run(t, "1 2\\"))
}

func TestDrop(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 1}}, run(t, "1 2;"))
}

func TestLt_Int(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 1}}, run(t, "1 2<"))
}

func TestLt_ArrTakeNegativeCountsFromEnd(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 1}, object.Int{Value: 2},
	}}}, run(t, "[1 2 3 4]-2<"))
}

func TestGt_ArrSkip(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 3}, object.Int{Value: 4},
	}}}, run(t, "[1 2 3 4]2>"))
}

func TestEq_IntArrIndexNegativeWraps(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 4}}, run(t, "[1 2 3 4]-1="))
}

func TestEq_IntStrIndexReturnsCodePoint(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: int64('b')}}, run(t, `"abc"1=`))
}

func TestComma_RangeThenLengthRoundTrips(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 3}}, run(t, "3,,"))
}

func TestDup(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 5}, object.Int{Value: 5}}, run(t, "5."))
}

func TestQmark_Power(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 8}}, run(t, "2 3?"))
}

func TestQmark_NegativeExponentIsRuntimeError(t *testing.T) {
	require.Error(t, runErr(t, "2 -1?"))
}

func TestQmark_IndexOf(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 1}}, run(t, "[5 6 7]6?"))
	require.Equal(t, []object.Value{object.Int{Value: -1}}, run(t, "[5 6 7]9?"))
}

func TestDec_Uncons(t *testing.T) {
	require.Equal(t, []object.Value{
		object.Arr{Elements: []object.Value{object.Int{Value: 2}, object.Int{Value: 3}}},
		object.Int{Value: 1},
	}, run(t, "[1 2 3]("))
}

func TestInc_UnconsLast(t *testing.T) {
	require.Equal(t, []object.Value{
		object.Arr{Elements: []object.Value{object.Int{Value: 1}, object.Int{Value: 2}}},
		object.Int{Value: 3},
	}, run(t, "[1 2 3])"))
}

func TestMarkerCollect(t *testing.T) {
	require.Equal(t, []object.Value{object.Arr{Elements: []object.Value{
		object.Int{Value: 1}, object.Int{Value: 2}, object.Int{Value: 3},
	}}}, run(t, "[1 2 3]"))
}

func TestAbs(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 5}}, run(t, "-5 abs"))
}

func TestIf_BlockAwareExecutesChosenBranch(t *testing.T) {
	require.Equal(t, []object.Value{object.Int{Value: 7}}, run(t, "1{3 4+}{9 9+}if"))
	require.Equal(t, []object.Value{object.Int{Value: 18}}, run(t, "0{3 4+}{9 9+}if"))
}

func TestPrint_NoTrailingNewline(t *testing.T) {
	tokens, err := lexer.Lex(`"hi"print`)
	require.NoError(t, err)
	var buf stringWriter
	it := NewWithOutput(&buf)
	require.NoError(t, it.Exec(tokens))
	require.Equal(t, `"hi"`, buf.s)
}

func TestPuts_PrintsValueThenNewlineDisplayForm(t *testing.T) {
	tokens, err := lexer.Lex(`"hi"puts`)
	require.NoError(t, err)
	var buf stringWriter
	it := NewWithOutput(&buf)
	require.NoError(t, it.Exec(tokens))
	require.Equal(t, `"hi""\n"`, buf.s)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	require.Error(t, runErr(t, "nosuchvar"))
}

func TestZipIsUnbound(t *testing.T) {
	require.Error(t, runErr(t, "zip"))
}

// stringWriter is a minimal io.Writer for asserting on captured output.
type stringWriter struct{ s string }

func (w *stringWriter) Write(p []byte) (int, error) {
	w.s += string(p)
	return len(p), nil
}
