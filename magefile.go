//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs when mage is invoked without arguments
var Default = Build

// Build compiles the flipcard binary
func Build() error {
	fmt.Println("Building flipcard...")
	return sh.RunV("go", "build", "-o", "flipcard", "./cmd/flipcard")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/flipcard")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("flipcard")
}
