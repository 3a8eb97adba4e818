// ==============================================================================================
// FILE: interp/errors.go
// PACKAGE: interp
// PURPOSE: errRuntimef builds a runtime error with the "runtime error: "
//          prefix; the stack primitives and dispatch in interp.go write the
//          same prefix directly.
// ==============================================================================================

package interp

import "github.com/pkg/errors"

func errRuntimef(format string, args ...interface{}) error {
	return errors.Errorf("runtime error: "+format, args...)
}
