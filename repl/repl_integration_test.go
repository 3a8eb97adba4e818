// ==============================================================================================
// FILE: repl/repl_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for the REPL.
//          Validates multi-line sessions involving block bindings and
//          higher-order operators.
// ==============================================================================================

package repl

import (
	"strings"
	"testing"
)

func TestIntegration_BlockBindingSession(t *testing.T) {
	input := `
	{-1*-}:plus;
	3 2 plus
	.exit`

	output := runSession(input)

	if !strings.Contains(output, "5") {
		t.Errorf("block-binding integration failed. Output:\n%s", output)
	}
}

func TestIntegration_FoldThenMapSession(t *testing.T) {
	input := `
	[1 2 3 4]{+}*
	[1 2 3]{2*}%
	.exit`

	output := runSession(input)

	if !strings.Contains(output, "10") {
		t.Errorf("fold did not produce 10. Output:\n%s", output)
	}
	if !strings.Contains(output, "2 4 6") {
		t.Errorf("map did not produce [2 4 6]. Output:\n%s", output)
	}
}
