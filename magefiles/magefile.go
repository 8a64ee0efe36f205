//go:build mage

// Package main provides build targets for piececube using Mage.
//
// Usage:
//
//	mage build     Compile piececube binary to bin/
//	mage test      Run all tests
//	mage cover     Run tests with a coverage profile
//	mage lint      Run golangci-lint
//	mage examples  Build the example programs
//	mage clean     Remove build artifacts
//	mage install   Install piececube to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "piececube"
	binaryDir  = "bin"
	cmdDir     = "./cmd/piececube"
	coverFile  = "coverage.out"
)

// Build compiles the piececube binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Cover runs all tests and prints per-function coverage.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverFile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverFile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Examples builds the example programs into bin/.
func Examples() error {
	mg.Deps(Build)
	for _, name := range []string{"simulate", "connect"} {
		out := filepath.Join(binaryDir, "example-"+name)
		if err := sh.RunV(binGo, "build", "-o", out, "./examples/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := sh.Rm(coverFile); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
