//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

var binaries = map[string]string{
	"phonemize":        "./cmd",
	"phonemize-export": "./cmd/export",
	"phonemize-fuzzy":  "./cmd/fuzzy",
}

// Build compiles the command-line tools into bin/.
func Build() error {
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	for name, pkg := range binaries {
		out := filepath.Join("bin", name)
		fmt.Printf("Building %s...\n", out)
		if err := sh.RunV("go", "build", "-o", out, pkg); err != nil {
			return err
		}
	}
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Bench runs the phonemizer micro-benchmarks and the batch throughput runner.
func Bench() error {
	mg.Deps(Build)
	if err := sh.RunV("go", "test", "-run", "^$", "-bench", ".", "./internal/phonemizer/"); err != nil {
		return err
	}
	return sh.RunWith(nil, "sh", "-c", "cd benchmarks && go run runner.go")
}

// Check runs vet and tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build and run output.
func Clean() error {
	for _, dir := range []string{"bin", "output", "benchmarks/results"} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}
