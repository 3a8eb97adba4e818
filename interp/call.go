// ==============================================================================================
// FILE: interp/call.go
// PACKAGE: interp
// PURPOSE: The block caller: re-enters the evaluator on a block's token
//          sequence and hands the caller back only the values the call
//          itself pushed, so sort-by/filter/find/map can treat a block
//          as a pure function from stack-top to stack-top.
// ==============================================================================================

package interp

import "github.com/lucarin91/golfscript-go/object"

// callBlock executes block.Tokens and returns the values pushed during the
// call (drained from one below the pre-call stack size, matching
// fun_call's prevLen-1 convention), removing them from the live stack.
func (it *Interp) callBlock(block object.Blk) ([]object.Value, error) {
	prevLen := len(it.stack)
	if err := it.execItems(block.Tokens); err != nil {
		return nil, err
	}
	from := prevLen - 1
	if from < 0 {
		from = 0
	}
	produced := append([]object.Value(nil), it.stack[from:]...)
	it.stack = it.stack[:from]
	it.clampMarkers()
	return produced, nil
}

// callBlockWith pushes v then calls callBlock.
func (it *Interp) callBlockWith(block object.Blk, v object.Value) ([]object.Value, error) {
	it.push(v)
	return it.callBlock(block)
}

// callBlockLast runs callBlockWith and returns only the last produced
// value, the convention sort-by/filter/find use.
func (it *Interp) callBlockLast(block object.Blk, v object.Value) (object.Value, error) {
	produced, err := it.callBlockWith(block, v)
	if err != nil {
		return nil, err
	}
	if len(produced) == 0 {
		return nil, errRuntimef("block produced no output")
	}
	return produced[len(produced)-1], nil
}
