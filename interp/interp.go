// ==============================================================================================
// FILE: interp/interp.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The stack machine and evaluator. This is the re-entrant core:
//          Exec walks a token sequence, pushing literals and dispatching
//          Var tokens to the operator table, the named built-ins, or the
//          variable environment, in that order.
// ==============================================================================================

package interp

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/lucarin91/golfscript-go/object"
)

// Interp owns the single global value stack, marker stack, and variable
// environment: there is exactly one of each, process-local.
type Interp struct {
	stack   []object.Value
	markers []int
	env     *object.Environment
	rng     *rand.Rand
	out     io.Writer
}

// New creates an Interp with the predefined block bindings installed
// (and, or, xor, puts, p) and output directed to stdout.
func New() *Interp {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput is New but lets print/puts/p write somewhere other than
// stdout; the REPL and test suite both rely on this to capture output.
func NewWithOutput(w io.Writer) *Interp {
	it := &Interp{
		env: object.NewEnvironment(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		out: w,
	}
	installPredefined(it.env)
	return it
}

// SetSeed pins the RNG used by `rand` (wired from the `-seed` CLI flag so
// golden fixtures and tests are reproducible).
func (it *Interp) SetSeed(seed int64) {
	it.rng = rand.New(rand.NewSource(seed))
}

// Stack returns the live stack slice, bottom to top. Callers must not
// retain it across a subsequent Exec call.
func (it *Interp) Stack() []object.Value {
	return it.stack
}

// Exec tokenizes nothing itself — it runs an already-lexed token sequence
// against this Interp's stack and environment.
func (it *Interp) Exec(tokens []object.Value) error {
	return it.execItems(tokens)
}

func (it *Interp) execItems(tokens []object.Value) error {
	for _, tok := range tokens {
		if err := it.execOne(tok); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) execOne(tok object.Value) error {
	switch t := tok.(type) {
	case object.Int, object.Str, object.Blk:
		it.push(tok)
		return nil

	case object.Assign:
		v, err := it.peek()
		if err != nil {
			return errors.Wrapf(err, "assign %q", t.Name)
		}
		it.env.Set(t.Name, v)
		return nil

	case object.Var:
		return it.execVar(t.Name)

	default:
		return errors.Errorf("runtime error: cannot execute token of kind %s", tok.Kind())
	}
}

// execVar dispatches in order: symbol operator, then named built-in, then
// the variable environment (executing a bound Blk recursively, pushing
// anything else).
func (it *Interp) execVar(name string) error {
	if op, ok := symbolOps[name]; ok {
		return op(it)
	}
	if fn, ok := namedBuiltins[name]; ok {
		return fn(it)
	}
	if v, ok := it.env.Get(name); ok {
		if blk, ok := v.(object.Blk); ok {
			return it.execItems(blk.Tokens)
		}
		it.push(v)
		return nil
	}
	return errors.Errorf("runtime error: undefined variable %q", name)
}

// -- stack primitives --

func (it *Interp) push(v object.Value) {
	it.stack = append(it.stack, v)
}

func (it *Interp) pop() (object.Value, error) {
	n := len(it.stack)
	if n == 0 {
		return nil, errors.New("runtime error: stack underflow")
	}
	v := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.clampMarkers()
	return v, nil
}

// pop2 pops and returns (top, below) — top is popped strictly first.
func (it *Interp) pop2() (top, below object.Value, err error) {
	top, err = it.pop()
	if err != nil {
		return nil, nil, err
	}
	below, err = it.pop()
	if err != nil {
		return nil, nil, err
	}
	return top, below, nil
}

func (it *Interp) peek() (object.Value, error) {
	n := len(it.stack)
	if n == 0 {
		return nil, errors.New("runtime error: stack underflow")
	}
	return it.stack[n-1], nil
}

func (it *Interp) clampMarkers() {
	n := len(it.stack)
	for i, m := range it.markers {
		if m > n {
			it.markers[i] = n
		}
	}
}

func (it *Interp) pushMarker() {
	it.markers = append(it.markers, len(it.stack))
}

func (it *Interp) popMarker() (int, error) {
	n := len(it.markers)
	if n == 0 {
		return 0, errors.New("runtime error: marker stack underflow")
	}
	m := it.markers[n-1]
	it.markers = it.markers[:n-1]
	return m, nil
}
