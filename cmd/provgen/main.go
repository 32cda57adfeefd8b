/*
 * Copyright (c) 2024-present Provgen authors
 */

package main

import (
	_ "embed"
	"os"

	"github.com/fatih/color"
	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

var red func(a ...interface{}) string
var green func(a ...interface{}) string

func main() {
	red = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	if err := execRootCmd(os.Args, version); err != nil {
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"provgen",
		"Resource schema validation and inspection utility",
		args,
		ver,
		newValidateCmd(),
		newDescribeCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
