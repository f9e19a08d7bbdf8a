// Package main is the entry point for the mlir-utils CLI.
package main

import "mlirutils.dev/pkg/mlirutils/cmd"

func main() {
	cmd.Execute()
}
