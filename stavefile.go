//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"f":   Test.Fuzz,
	"l":   Lint.Default,
	"c":   Check,
	"d":   Demo,
	"fmt": Lint.Fmt,
	"bl":  Bench.Layout,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

// fuzzTargets lists every fuzz function with the package that holds it.
//
//nolint:gochecknoglobals // Static target table.
var fuzzTargets = []struct{ pkg, name string }{
	{"./pkg/docfile", "FuzzDecodeYAML"},
	{"./pkg/docfile", "FuzzBuild"},
	{"./pkg/markdown", "FuzzConvert"},
}

// demoWidths are the page widths the Demo target renders at.
const demoWidths = "80,40,20"

// Build compiles the prettydoc binary with version info.
// Skips recompilation when source files have not changed.
func Build() error {
	rebuild, err := target.Dir("bin/prettydoc", "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println("bin/prettydoc is up to date")
		return nil
	}
	fmt.Println("Building prettydoc...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", "bin/prettydoc", "./cmd/prettydoc")
}

// Demo builds prettydoc and renders its built-in scenarios at a few widths.
func Demo() error {
	st.Deps(Build)
	return sh.RunV("bin/prettydoc", "demo", "--widths", demoWidths)
}

// Check runs format, lint, and test sequentially.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build artifacts and fuzz caches written under testdata.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	for _, path := range []string{"bin", "coverage.out", "pkg/docfile/testdata/fuzz", "pkg/markdown/testdata/fuzz"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs prettydoc to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing prettydoc...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/prettydoc")
}

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	fmt.Println("Running tests...")
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", nCores,
		"-parallel", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// Fuzz runs each fuzz target in turn for PRETTYDOC_FUZZTIME (default 30s).
// Document files and Markdown input must never make conversion panic.
func (Test) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("PRETTYDOC_FUZZTIME"), "30s")
	for _, ft := range fuzzTargets {
		fmt.Printf("Fuzzing %s %s for %s...\n", ft.pkg, ft.name, fuzzTime)
		if err := sh.RunV("go", "test", "-run=^$", "-fuzz=^"+ft.name+"$", "-fuzztime", fuzzTime, ft.pkg); err != nil {
			return fmt.Errorf("%s: %w", ft.name, err)
		}
	}
	return nil
}

// Scenarios renders every demo scenario at width 20 and checks that the
// fixed-nest scenario puts its arguments on indented lines.
func (Test) Scenarios() error {
	st.Deps(Build)
	out, err := sh.Output("bin/prettydoc", "--color", "never", "demo", "--widths", "20")
	if err != nil {
		return err
	}
	if !strings.Contains(out, "math.min(\n  1,") {
		return fmt.Errorf("nest-fixed scenario did not break at width 20:\n%s", out)
	}
	fmt.Println("✓ Demo scenarios render")
	return nil
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	fmt.Println("Running linters...")
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	fmt.Println("Formatting code...")
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck verifies code formatting without modifying files.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt check failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nRun 'stave lint:fmt' to fix", out)
	}
	return nil
}

// Gate runs the CI checks in order.
func (CI) Gate() error {
	fmt.Println("Running CI gate checks...")
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.Default,
		Test.Default,
		Test.Scenarios,
	)
	fmt.Println("✓ All CI gate checks passed")
	return nil
}

// Default runs every benchmark.
func (Bench) Default() error {
	fmt.Println("Running benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

// Layout runs the benchmarks of the layout core only.
func (Bench) Layout() error {
	fmt.Println("Running layout benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem",
		"./pkg/doc/...", "./pkg/layout/...", "./pkg/render/...")
}

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		version, commit, date,
	)
}
