// ==============================================================================================
// FILE: cmd/gengolden/main.go
// ==============================================================================================
// PURPOSE: Runs every testdata/*.gs fixture concurrently and either writes
//          its final-stack rendering as a .golden file or, in -check mode,
//          verifies the existing .golden files still match. Grounded on
//          jcorbin-gothird/scripts/gen_vm_expects.go's errgroup +
//          context.WithTimeout pipeline; the per-script timeout guards
//          against a runaway unfold, since the core evaluator has no
//          cancellation of its own.
// ==============================================================================================

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lucarin91/golfscript-go/interp"
	"github.com/lucarin91/golfscript-go/lexer"
	"github.com/lucarin91/golfscript-go/object"
)

func main() {
	dir := flag.String("dir", "testdata", "directory of .gs fixture scripts")
	check := flag.Bool("check", false, "verify .golden files instead of writing them")
	timeout := flag.Duration("timeout", 5*time.Second, "per-script execution timeout")
	flag.Parse()

	scripts, err := filepath.Glob(filepath.Join(*dir, "*.gs"))
	if err != nil {
		log.Fatalf("glob %s: %v", *dir, err)
	}
	if len(scripts) == 0 {
		log.Fatalf("no .gs fixtures found under %s", *dir)
	}

	eg, ctx := errgroup.WithContext(context.Background())
	mismatches := make([]string, len(scripts))

	for i, script := range scripts {
		i, script := i, script
		eg.Go(func() error {
			scriptCtx, cancel := context.WithTimeout(ctx, *timeout)
			defer cancel()
			return runOne(scriptCtx, script, *check, &mismatches[i])
		})
	}

	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	var failed int
	for _, m := range mismatches {
		if m != "" {
			fmt.Fprintln(os.Stderr, m)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runOne(ctx context.Context, script string, check bool, mismatch *string) error {
	src, err := os.ReadFile(script)
	if err != nil {
		return fmt.Errorf("read %s: %w", script, err)
	}

	tokens, err := lexer.Lex(string(src))
	if err != nil {
		return fmt.Errorf("lex %s: %w", script, err)
	}

	result := make(chan string, 1)
	errc := make(chan error, 1)
	go func() {
		it := interp.New()
		it.SetSeed(1)
		if err := it.Exec(tokens); err != nil {
			errc <- fmt.Errorf("exec %s: %w", script, err)
			return
		}
		result <- renderStack(it.Stack())
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", script, ctx.Err())
	case err := <-errc:
		return err
	case rendered := <-result:
		return compareOrWrite(script, rendered, check, mismatch)
	}
}

// renderStack joins the final stack's Display forms with "|", the same
// separator the REPL uses, so golden files double as a readable record
// of each fixture's expected result.
func renderStack(stack []object.Value) string {
	parts := make([]string, len(stack))
	for i, v := range stack {
		parts[i] = v.Display()
	}
	return strings.Join(parts, "|")
}

func compareOrWrite(script, rendered string, check bool, mismatch *string) error {
	goldenPath := strings.TrimSuffix(script, ".gs") + ".golden"

	if check {
		want, err := os.ReadFile(goldenPath)
		if err != nil {
			return fmt.Errorf("read golden for %s: %w", script, err)
		}
		if string(want) != rendered {
			*mismatch = fmt.Sprintf("%s: got %q, want %q", script, rendered, string(want))
		}
		return nil
	}

	return os.WriteFile(goldenPath, []byte(rendered), 0o644)
}
