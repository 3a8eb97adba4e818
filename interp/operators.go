// ==============================================================================================
// FILE: interp/operators.go
// PACKAGE: interp
// PURPOSE: The ~30 symbol operators, each keyed by the pair (or single) of
//          operand kinds. Stack positions (which operand is "top" vs
//          "below" for each named combination) are pinned explicitly by
//          each pop2() call rather than left to the prose names.
// ==============================================================================================

package interp

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/lucarin91/golfscript-go/lexer"
	"github.com/lucarin91/golfscript-go/object"
)

// symbolOps is the closed dispatch table for one-character operator names.
var symbolOps = map[string]func(*Interp) error{
	"+":  opAdd,
	"-":  opSub,
	"!":  opNot,
	"@":  opRot,
	"$":  opDollar,
	"*":  opMul,
	"/":  opDiv,
	"%":  opMod,
	"~":  opTilde,
	"`":  opBacktick,
	"|":  opOr,
	"&":  opAnd,
	"^":  opXor,
	"\\": opSwap,
	";":  opDrop,
	"<":  opLt,
	">":  opGt,
	"=":  opEq,
	",":  opComma,
	".":  opDup,
	"?":  opQmark,
	"(":  opDec,
	")":  opInc,
	"[":  opMarkerOpen,
	"]":  opMarkerClose,
}

func opAdd(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	below, top = object.Coerce(below, top)
	switch b := below.(type) {
	case object.Int:
		it.push(object.Int{Value: b.Value + top.(object.Int).Value})
	case object.Str:
		it.push(object.Str{Value: b.Value + top.(object.Str).Value})
	case object.Arr:
		it.push(object.Arr{Elements: concatValues(b.Elements, top.(object.Arr).Elements)})
	case object.Blk:
		it.push(object.Blk{Tokens: concatValues(b.Tokens, top.(object.Blk).Tokens)})
	default:
		return errRuntimef("unsupported operand kinds for '+': %s, %s", below.Kind(), top.Kind())
	}
	return nil
}

func opSub(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	below, top = object.Coerce(below, top)
	switch b := below.(type) {
	case object.Int:
		t, ok := top.(object.Int)
		if !ok {
			return errRuntimef("unsupported operand kinds for '-': %s, %s", below.Kind(), top.Kind())
		}
		it.push(object.Int{Value: b.Value - t.Value})
	case object.Arr:
		t, ok := top.(object.Arr)
		if !ok {
			return errRuntimef("unsupported operand kinds for '-': %s, %s", below.Kind(), top.Kind())
		}
		it.push(object.Arr{Elements: arrDifference(b.Elements, t.Elements)})
	default:
		return errRuntimef("unsupported operand kinds for '-': %s, %s", below.Kind(), top.Kind())
	}
	return nil
}

func opNot(it *Interp) error {
	v, err := it.pop()
	if err != nil {
		return err
	}
	if object.Truthy(v) {
		it.push(object.Int{Value: 0})
	} else {
		it.push(object.Int{Value: 1})
	}
	return nil
}

// opRot implements `@`: [...,a,b,c] -> [...,b,c,a].
func opRot(it *Interp) error {
	n := len(it.stack)
	if n < 3 {
		return errRuntimef("stack underflow for '@'")
	}
	a, b, c := it.stack[n-3], it.stack[n-2], it.stack[n-1]
	it.stack[n-3], it.stack[n-2], it.stack[n-1] = b, c, a
	return nil
}

func opDollar(it *Interp) error {
	top, err := it.peek()
	if err != nil {
		return err
	}
	switch t := top.(type) {
	case object.Int:
		it.pop()
		n := t.Value
		if n < 0 || int(n) >= len(it.stack) {
			return errRuntimef("index %d out of range for '$'", n)
		}
		idx := len(it.stack) - 1 - int(n)
		it.push(it.stack[idx])
		return nil

	case object.Str:
		it.pop()
		runes := []rune(t.Value)
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
		it.push(object.Str{Value: string(runes)})
		return nil

	case object.Arr:
		it.pop()
		elems := append([]object.Value(nil), t.Elements...)
		sort.SliceStable(elems, func(i, j int) bool { return object.Less(elems[i], elems[j]) })
		it.push(object.Arr{Elements: elems})
		return nil

	case object.Blk:
		it.pop() // discard the peeked block
		below, err := it.pop()
		if err != nil {
			return err
		}
		switch b := below.(type) {
		case object.Arr:
			sorted, err := it.sortByBlock(b.Elements, t)
			if err != nil {
				return err
			}
			it.push(object.Arr{Elements: sorted})
			return nil
		case object.Str:
			runeVals := make([]object.Value, 0, len(b.Value))
			for _, r := range b.Value {
				runeVals = append(runeVals, object.Int{Value: int64(r)})
			}
			sorted, err := it.sortByBlock(runeVals, t)
			if err != nil {
				return err
			}
			var sb strings.Builder
			for _, v := range sorted {
				sb.WriteRune(rune(v.(object.Int).Value))
			}
			it.push(object.Str{Value: sb.String()})
			return nil
		default:
			return errRuntimef("unsupported operand kind %s for sort-by", below.Kind())
		}

	default:
		return errRuntimef("unsupported operand kind %s for '$'", top.Kind())
	}
}

// sortByBlock sorts elements by the last value callBlockWith(block, el)
// produces, stably.
func (it *Interp) sortByBlock(elements []object.Value, block object.Blk) ([]object.Value, error) {
	type keyed struct {
		v   object.Value
		key object.Value
	}
	keys := make([]keyed, len(elements))
	for i, e := range elements {
		key, err := it.callBlockLast(block, e)
		if err != nil {
			return nil, err
		}
		keys[i] = keyed{v: e, key: key}
	}
	sort.SliceStable(keys, func(i, j int) bool { return object.Less(keys[i].key, keys[j].key) })
	out := make([]object.Value, len(keys))
	for i, k := range keys {
		out[i] = k.v
	}
	return out, nil
}

func opMul(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	switch b := below.(type) {
	case object.Int:
		switch t := top.(type) {
		case object.Int:
			it.push(object.Int{Value: b.Value * t.Value})
			return nil
		case object.Str:
			return it.repeatStr(t, b.Value)
		case object.Arr:
			return it.repeatArr(t, b.Value)
		case object.Blk:
			return it.execBlockNTimes(t, b.Value)
		}
	case object.Str:
		switch t := top.(type) {
		case object.Int:
			return it.repeatStr(b, t.Value)
		case object.Str:
			return it.joinStrStr(b, t)
		case object.Arr:
			return it.joinArrStr(t, b)
		case object.Blk:
			return it.foldStrBlock(b, t)
		}
	case object.Arr:
		switch t := top.(type) {
		case object.Int:
			return it.repeatArr(b, t.Value)
		case object.Str:
			return it.joinArrStr(b, t)
		case object.Arr:
			return it.joinArrArr(b, t)
		case object.Blk:
			return it.foldArrBlock(b, t)
		}
	case object.Blk:
		switch t := top.(type) {
		case object.Int:
			return it.execBlockNTimes(b, t.Value)
		case object.Str:
			return it.foldStrBlock(t, b)
		case object.Arr:
			return it.foldArrBlock(t, b)
		}
	}
	return errRuntimef("unsupported operand kinds for '*': %s, %s", below.Kind(), top.Kind())
}

func (it *Interp) repeatStr(s object.Str, n int64) error {
	if n < 0 {
		return errRuntimef("negative repeat count for '*'")
	}
	it.push(object.Str{Value: strings.Repeat(s.Value, int(n))})
	return nil
}

func (it *Interp) repeatArr(a object.Arr, n int64) error {
	if n < 0 {
		return errRuntimef("negative repeat count for '*'")
	}
	out := make([]object.Value, 0, int64(len(a.Elements))*n)
	for i := int64(0); i < n; i++ {
		out = append(out, a.Elements...)
	}
	it.push(object.Arr{Elements: out})
	return nil
}

func (it *Interp) execBlockNTimes(b object.Blk, n int64) error {
	for i := int64(0); i < n; i++ {
		if err := it.execItems(b.Tokens); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) joinArrStr(arr object.Arr, sep object.Str) error {
	parts := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		parts[i] = object.UpcastToStr(e).(object.Str).Value
	}
	it.push(object.Str{Value: strings.Join(parts, sep.Value)})
	return nil
}

func (it *Interp) joinStrStr(below, top object.Str) error {
	runes := []rune(below.Value)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	it.push(object.Str{Value: strings.Join(parts, top.Value)})
	return nil
}

// joinArrArr flattens each element of "from" by one level, interspersing
// "sep" between top-level elements.
func (it *Interp) joinArrArr(from, sep object.Arr) error {
	var out []object.Value
	for i, e := range from.Elements {
		if i > 0 {
			out = append(out, sep.Elements...)
		}
		if inner, ok := e.(object.Arr); ok {
			out = append(out, inner.Elements...)
		} else {
			out = append(out, e)
		}
	}
	it.push(object.Arr{Elements: out})
	return nil
}

func (it *Interp) foldArrBlock(a object.Arr, b object.Blk) error {
	for _, e := range a.Elements {
		it.push(e)
	}
	for i := 0; i < len(a.Elements)-1; i++ {
		if err := it.execItems(b.Tokens); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) foldStrBlock(s object.Str, b object.Blk) error {
	runes := []rune(s.Value)
	for _, r := range runes {
		it.push(object.Int{Value: int64(r)})
	}
	for i := 0; i < len(runes)-1; i++ {
		if err := it.execItems(b.Tokens); err != nil {
			return err
		}
	}
	return nil
}

func opDiv(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	switch b := below.(type) {
	case object.Int:
		switch t := top.(type) {
		case object.Int:
			if t.Value == 0 {
				return errRuntimef("division by zero")
			}
			it.push(object.Int{Value: b.Value / t.Value})
			return nil
		}
	case object.Arr:
		switch t := top.(type) {
		case object.Int:
			it.push(object.Arr{Elements: chunkArr(b.Elements, t.Value)})
			return nil
		case object.Arr:
			it.push(object.Arr{Elements: splitArr(b.Elements, t.Elements)})
			return nil
		case object.Blk:
			return it.eachArr(b, t)
		}
	case object.Str:
		if t, ok := top.(object.Str); ok {
			it.push(splitStr(b.Value, t.Value))
			return nil
		}
	case object.Blk:
		if t, ok := top.(object.Blk); ok {
			return it.unfold(b, t)
		}
	}
	return errRuntimef("unsupported operand kinds for '/': %s, %s", below.Kind(), top.Kind())
}

func chunkArr(elements []object.Value, n int64) []object.Value {
	if n <= 0 {
		return []object.Value{object.Arr{Elements: append([]object.Value(nil), elements...)}}
	}
	var out []object.Value
	for i := 0; i < len(elements); i += int(n) {
		end := i + int(n)
		if end > len(elements) {
			end = len(elements)
		}
		out = append(out, object.Arr{Elements: append([]object.Value(nil), elements[i:end]...)})
	}
	return out
}

// splitArr splits elements into sub-arrays on every contiguous run equal
// to pattern.
func splitArr(elements, pattern []object.Value) []object.Value {
	if len(pattern) == 0 {
		return []object.Value{object.Arr{Elements: append([]object.Value(nil), elements...)}}
	}
	var out []object.Value
	var pending, run []object.Value
	pIdx := 0
	for _, el := range elements {
		if object.Equal(el, pattern[pIdx]) {
			run = append(run, el)
			pIdx++
		} else {
			pending = append(pending, run...)
			pending = append(pending, el)
			run = nil
			pIdx = 0
		}
		if pIdx == len(pattern) {
			run = nil
			pIdx = 0
			out = append(out, object.Arr{Elements: pending})
			pending = nil
		}
	}
	pending = append(pending, run...)
	if len(pending) > 0 {
		out = append(out, object.Arr{Elements: pending})
	}
	return out
}

func splitStr(s, sep string) object.Value {
	var parts []string
	if sep == "" {
		parts = strings.Split(s, "")
	} else {
		parts = strings.Split(s, sep)
	}
	elems := make([]object.Value, len(parts))
	for i, p := range parts {
		elems[i] = object.Str{Value: p}
	}
	return object.Arr{Elements: elems}
}

func (it *Interp) eachArr(a object.Arr, b object.Blk) error {
	for _, e := range a.Elements {
		it.push(e)
		if err := it.execItems(b.Tokens); err != nil {
			return err
		}
	}
	return nil
}

// unfold implements `/`'s Blk/Blk form: cond is below, body is top.
func (it *Interp) unfold(cond, body object.Blk) error {
	var items []object.Value
	for {
		top, err := it.peek()
		if err != nil {
			return err
		}
		it.push(top)
		checked, err := it.callBlock(cond)
		if err != nil {
			return err
		}
		if len(checked) == 0 {
			return errRuntimef("unfold condition block produced no output")
		}
		last := checked[len(checked)-1]
		n, ok := last.(object.Int)
		if !ok {
			return errRuntimef("unfold condition must return Int, got %s", last.Kind())
		}
		if n.Value == 0 {
			break
		}
		snap, err := it.peek()
		if err != nil {
			return err
		}
		items = append(items, snap)
		if err := it.execItems(body.Tokens); err != nil {
			return err
		}
	}
	it.push(object.Arr{Elements: items})
	return nil
}

func opMod(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	switch b := below.(type) {
	case object.Int:
		t, ok := top.(object.Int)
		if !ok {
			return errRuntimef("unsupported operand kinds for '%%': %s, %s", below.Kind(), top.Kind())
		}
		if t.Value == 0 {
			return errRuntimef("modulo by zero")
		}
		it.push(object.Int{Value: b.Value % t.Value})
		return nil
	case object.Str:
		t, ok := top.(object.Str)
		if !ok {
			return errRuntimef("unsupported operand kinds for '%%': %s, %s", below.Kind(), top.Kind())
		}
		it.push(splitStrDropEmpty(b.Value, t.Value))
		return nil
	case object.Arr:
		switch t := top.(type) {
		case object.Int:
			it.push(object.Arr{Elements: everyNth(b.Elements, t.Value)})
			return nil
		case object.Blk:
			return it.mapArr(b, t)
		}
	}
	return errRuntimef("unsupported operand kinds for '%%': %s, %s", below.Kind(), top.Kind())
}

func splitStrDropEmpty(s, sep string) object.Value {
	var parts []string
	if sep == "" {
		parts = strings.Split(s, "")
	} else {
		parts = strings.Split(s, sep)
	}
	var elems []object.Value
	for _, p := range parts {
		if p != "" {
			elems = append(elems, object.Str{Value: p})
		}
	}
	return object.Arr{Elements: elems}
}

func everyNth(elements []object.Value, n int64) []object.Value {
	if n == 0 {
		return nil
	}
	stride := n
	if stride < 0 {
		stride = -stride
	}
	var out []object.Value
	for i, e := range elements {
		if int64(i)%stride == 0 {
			out = append(out, e)
		}
	}
	if n < 0 {
		reverseValues(out)
	}
	return out
}

func reverseValues(vs []object.Value) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

func (it *Interp) mapArr(a object.Arr, b object.Blk) error {
	var out []object.Value
	for _, e := range a.Elements {
		produced, err := it.callBlockWith(b, e)
		if err != nil {
			return err
		}
		out = append(out, produced...)
	}
	it.push(object.Arr{Elements: out})
	return nil
}

func opTilde(it *Interp) error {
	v, err := it.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case object.Int:
		it.push(object.Int{Value: ^x.Value})
		return nil
	case object.Arr:
		for _, e := range x.Elements {
			it.push(e)
		}
		return nil
	case object.Str:
		toks, err := lexer.Lex(x.Value)
		if err != nil {
			return errors.Wrap(err, "lexing string for '~'")
		}
		return it.execItems(toks)
	case object.Blk:
		return it.execItems(x.Tokens)
	default:
		return errRuntimef("unsupported operand kind %s for '~'", v.Kind())
	}
}

func opBacktick(it *Interp) error {
	v, err := it.pop()
	if err != nil {
		return err
	}
	it.push(object.Str{Value: v.Display()})
	return nil
}

func opOr(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	below, top = object.Coerce(below, top)
	if bi, ok := below.(object.Int); ok {
		ti, ok := top.(object.Int)
		if !ok {
			return errRuntimef("unsupported operand kinds for '|': %s, %s", below.Kind(), top.Kind())
		}
		it.push(object.Int{Value: bi.Value | ti.Value})
		return nil
	}
	ba, ok := below.(object.Arr)
	if !ok {
		return errRuntimef("unsupported operand kinds for '|': %s, %s", below.Kind(), top.Kind())
	}
	ta, ok := top.(object.Arr)
	if !ok {
		return errRuntimef("unsupported operand kinds for '|': %s, %s", below.Kind(), top.Kind())
	}
	it.push(object.Arr{Elements: uniqueValues(concatValues(ta.Elements, ba.Elements))})
	return nil
}

// opAnd implements Arr&Arr as true set intersection — below elements also
// present in top, deduped, first-seen order.
func opAnd(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	below, top = object.Coerce(below, top)
	if bi, ok := below.(object.Int); ok {
		ti, ok := top.(object.Int)
		if !ok {
			return errRuntimef("unsupported operand kinds for '&': %s, %s", below.Kind(), top.Kind())
		}
		it.push(object.Int{Value: bi.Value & ti.Value})
		return nil
	}
	ba, ok := below.(object.Arr)
	if !ok {
		return errRuntimef("unsupported operand kinds for '&': %s, %s", below.Kind(), top.Kind())
	}
	ta, ok := top.(object.Arr)
	if !ok {
		return errRuntimef("unsupported operand kinds for '&': %s, %s", below.Kind(), top.Kind())
	}
	var out []object.Value
	for _, e := range ba.Elements {
		if containsEqual(ta.Elements, e) && !containsEqual(out, e) {
			out = append(out, e)
		}
	}
	it.push(object.Arr{Elements: out})
	return nil
}

// opXor: Int^Int bitwise; Arr^Arr is symmetric difference, deduped.
func opXor(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	below, top = object.Coerce(below, top)
	if bi, ok := below.(object.Int); ok {
		ti, ok := top.(object.Int)
		if !ok {
			return errRuntimef("unsupported operand kinds for '^': %s, %s", below.Kind(), top.Kind())
		}
		it.push(object.Int{Value: bi.Value ^ ti.Value})
		return nil
	}
	ba, ok := below.(object.Arr)
	if !ok {
		return errRuntimef("unsupported operand kinds for '^': %s, %s", below.Kind(), top.Kind())
	}
	ta, ok := top.(object.Arr)
	if !ok {
		return errRuntimef("unsupported operand kinds for '^': %s, %s", below.Kind(), top.Kind())
	}
	var out []object.Value
	for _, e := range ba.Elements {
		if !containsEqual(ta.Elements, e) && !containsEqual(out, e) {
			out = append(out, e)
		}
	}
	for _, e := range ta.Elements {
		if !containsEqual(ba.Elements, e) && !containsEqual(out, e) {
			out = append(out, e)
		}
	}
	it.push(object.Arr{Elements: out})
	return nil
}

func opSwap(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	it.push(top)
	it.push(below)
	return nil
}

func opDrop(it *Interp) error {
	_, err := it.pop()
	return err
}

func opLt(it *Interp) error {
	return cmpOp(it, func(c int) bool { return c < 0 }, true)
}

func opGt(it *Interp) error {
	return cmpOp(it, func(c int) bool { return c > 0 }, false)
}

func cmpOp(it *Interp, pred func(int) bool, isLt bool) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	switch b := below.(type) {
	case object.Int:
		switch t := top.(type) {
		case object.Int:
			it.push(boolInt(pred(cmpInt(b.Value, t.Value))))
			return nil
		case object.Arr:
			return takeOrSkip(it, t.Elements, b.Value, isLt, func(el []object.Value) object.Value {
				return object.Arr{Elements: el}
			})
		case object.Str:
			return takeOrSkipStr(it, t.Value, b.Value, isLt)
		}
	case object.Str:
		if t, ok := top.(object.Str); ok {
			it.push(boolInt(pred(cmpStr(b.Value, t.Value))))
			return nil
		}
	case object.Arr:
		if t, ok := top.(object.Int); ok {
			return takeOrSkip(it, b.Elements, t.Value, isLt, func(el []object.Value) object.Value {
				return object.Arr{Elements: el}
			})
		}
	}
	name := "<"
	if !isLt {
		name = ">"
	}
	return errRuntimef("unsupported operand kinds for '%s': %s, %s", name, below.Kind(), top.Kind())
}

func boolInt(b bool) object.Value {
	if b {
		return object.Int{Value: 1}
	}
	return object.Int{Value: 0}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpStr(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// takeOrSkip implements `<`/`>` against Arr: take first n / skip first n,
// with negative n counting from the end.
func takeOrSkip(it *Interp, elements []object.Value, n int64, isLt bool, wrap func([]object.Value) object.Value) error {
	idx := clampSliceIndex(n, len(elements))
	if isLt {
		it.push(wrap(append([]object.Value(nil), elements[:idx]...)))
	} else {
		it.push(wrap(append([]object.Value(nil), elements[idx:]...)))
	}
	return nil
}

func takeOrSkipStr(it *Interp, s string, n int64, isLt bool) error {
	runes := []rune(s)
	idx := clampSliceIndex(n, len(runes))
	if isLt {
		it.push(object.Str{Value: string(runes[:idx])})
	} else {
		it.push(object.Str{Value: string(runes[idx:])})
	}
	return nil
}

// clampSliceIndex turns n into a valid slice boundary within [0, length],
// treating negative n as counting back from length.
func clampSliceIndex(n int64, length int) int {
	idx := n
	if idx < 0 {
		idx = int64(length) + idx
	}
	if idx < 0 {
		idx = 0
	}
	if idx > int64(length) {
		idx = int64(length)
	}
	return int(idx)
}

func opEq(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	if below.Kind() == top.Kind() {
		it.push(boolInt(object.Equal(below, top)))
		return nil
	}
	if bi, ok := below.(object.Int); ok {
		switch t := top.(type) {
		case object.Arr:
			return indexInto(it, t.Elements, bi.Value)
		case object.Str:
			return indexIntoStr(it, t.Value, bi.Value)
		}
	}
	if ti, ok := top.(object.Int); ok {
		switch b := below.(type) {
		case object.Arr:
			return indexInto(it, b.Elements, ti.Value)
		case object.Str:
			return indexIntoStr(it, b.Value, ti.Value)
		}
	}
	return errRuntimef("unsupported operand kinds for '=': %s, %s", below.Kind(), top.Kind())
}

// indexInto implements Int+Arr indexing with negative wraparound.
func indexInto(it *Interp, elements []object.Value, n int64) error {
	idx := n
	if idx < 0 {
		idx = int64(len(elements)) + idx
	}
	if idx < 0 || idx >= int64(len(elements)) {
		return errRuntimef("index %d out of range for '='", n)
	}
	it.push(elements[idx])
	return nil
}

// indexIntoStr implements Int+Str indexing, returning the code point as
// Int.
func indexIntoStr(it *Interp, s string, n int64) error {
	runes := []rune(s)
	idx := n
	if idx < 0 {
		idx = int64(len(runes)) + idx
	}
	if idx < 0 || idx >= int64(len(runes)) {
		return errRuntimef("index %d out of range for '='", n)
	}
	it.push(object.Int{Value: int64(runes[idx])})
	return nil
}

func opComma(it *Interp) error {
	top, err := it.peek()
	if err != nil {
		return err
	}
	switch t := top.(type) {
	case object.Int:
		it.pop()
		if t.Value <= 0 {
			it.push(object.Arr{})
			return nil
		}
		elems := make([]object.Value, t.Value)
		for i := range elems {
			elems[i] = object.Int{Value: int64(i)}
		}
		it.push(object.Arr{Elements: elems})
		return nil

	case object.Arr:
		it.pop()
		it.push(object.Int{Value: int64(len(t.Elements))})
		return nil

	case object.Blk:
		it.pop()
		below, err := it.pop()
		if err != nil {
			return err
		}
		arr, ok := below.(object.Arr)
		if !ok {
			return errRuntimef("unsupported operand kind %s for filter", below.Kind())
		}
		return it.filterArr(arr, t)

	default:
		return errRuntimef("unsupported operand kind %s for ','", top.Kind())
	}
}

// filterArr implements the Blk+Arr filter supplement: keep elements for
// which the block's last produced value is truthy.
func (it *Interp) filterArr(a object.Arr, b object.Blk) error {
	var out []object.Value
	for _, e := range a.Elements {
		last, err := it.callBlockLast(b, e)
		if err != nil {
			return err
		}
		if object.Truthy(last) {
			out = append(out, e)
		}
	}
	it.push(object.Arr{Elements: out})
	return nil
}

func opDup(it *Interp) error {
	v, err := it.peek()
	if err != nil {
		return err
	}
	it.push(v)
	return nil
}

func opQmark(it *Interp) error {
	top, below, err := it.pop2()
	if err != nil {
		return err
	}
	switch b := below.(type) {
	case object.Int:
		switch t := top.(type) {
		case object.Int:
			if t.Value < 0 {
				return errRuntimef("cannot raise to negative power")
			}
			it.push(object.Int{Value: intPow(b.Value, t.Value)})
			return nil
		}
	case object.Arr:
		switch t := top.(type) {
		case object.Int:
			it.push(object.Int{Value: indexOf(b.Elements, t)})
			return nil
		case object.Blk:
			return it.findArr(b, t)
		}
	}
	if bi, ok := below.(object.Int); ok {
		if arr, ok := top.(object.Arr); ok {
			it.push(object.Int{Value: indexOf(arr.Elements, bi)})
			return nil
		}
	}
	return errRuntimef("unsupported operand kinds for '?': %s, %s", below.Kind(), top.Kind())
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func indexOf(elements []object.Value, needle object.Int) int64 {
	for i, e := range elements {
		if n, ok := e.(object.Int); ok && n.Value == needle.Value {
			return int64(i)
		}
	}
	return -1
}

// findArr implements the Blk+Arr "find" variant: the first element for
// which the block's last output is truthy, or an empty Arr if none match.
func (it *Interp) findArr(a object.Arr, b object.Blk) error {
	for _, e := range a.Elements {
		last, err := it.callBlockLast(b, e)
		if err != nil {
			return err
		}
		if object.Truthy(last) {
			it.push(e)
			return nil
		}
	}
	it.push(object.Arr{})
	return nil
}

func opDec(it *Interp) error {
	v, err := it.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case object.Int:
		it.push(object.Int{Value: x.Value - 1})
		return nil
	case object.Arr:
		if len(x.Elements) == 0 {
			return errRuntimef("uncons on empty array")
		}
		it.push(object.Arr{Elements: append([]object.Value(nil), x.Elements[1:]...)})
		it.push(x.Elements[0])
		return nil
	default:
		return errRuntimef("unsupported operand kind %s for '('", v.Kind())
	}
}

func opInc(it *Interp) error {
	v, err := it.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case object.Int:
		it.push(object.Int{Value: x.Value + 1})
		return nil
	case object.Arr:
		if len(x.Elements) == 0 {
			return errRuntimef("uncons on empty array")
		}
		last := len(x.Elements) - 1
		it.push(object.Arr{Elements: append([]object.Value(nil), x.Elements[:last]...)})
		it.push(x.Elements[last])
		return nil
	default:
		return errRuntimef("unsupported operand kind %s for ')'", v.Kind())
	}
}

func opMarkerOpen(it *Interp) error {
	it.pushMarker()
	return nil
}

func opMarkerClose(it *Interp) error {
	m, err := it.popMarker()
	if err != nil {
		return err
	}
	if m > len(it.stack) {
		m = len(it.stack)
	}
	collected := append([]object.Value(nil), it.stack[m:]...)
	it.stack = it.stack[:m]
	it.push(object.Arr{Elements: collected})
	return nil
}

// -- small shared helpers --

func concatValues(a, b []object.Value) []object.Value {
	out := make([]object.Value, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func arrDifference(a, b []object.Value) []object.Value {
	var out []object.Value
	for _, e := range a {
		if !containsEqual(b, e) {
			out = append(out, e)
		}
	}
	return out
}

func containsEqual(haystack []object.Value, needle object.Value) bool {
	for _, e := range haystack {
		if object.Equal(e, needle) {
			return true
		}
	}
	return false
}

func uniqueValues(vs []object.Value) []object.Value {
	var out []object.Value
	for _, e := range vs {
		if !containsEqual(out, e) {
			out = append(out, e)
		}
	}
	return out
}
