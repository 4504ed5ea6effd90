//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

// Build compiles the ptrat and ptratplot commands into ./bin.
func Build() error {
	mg.Deps(BuildPtrat, BuildPtratPlot)
	fmt.Println("Compilation finished")
	return nil
}

func BuildPtrat() error {
	return sh.RunV("go", "build", "-o", "./bin/ptrat", "./ptrat")
}

func BuildPtratPlot() error {
	return sh.RunV("go", "build", "-o", "./bin/ptratplot", "./ptratplot")
}

func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Analyze runs the analysis over the default inputs and plots the result.
func Analyze() error {
	mg.Deps(Build)
	if err := sh.RunV("./bin/ptrat", "-j", "2", "-o", "ptrat.root"); err != nil {
		return err
	}
	return sh.RunV("./bin/ptratplot", "-o", "ptrat.png", "ptrat.root")
}
