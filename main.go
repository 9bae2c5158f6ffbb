// Package main is the entry point for the assetview CLI application.
//
// The assetview tool lists, searches and inspects a catalogue of assets
// grouped by folder, read from a JSON or YAML data file.
package main

import "github.com/ajxudir/assetview/cmd"

// main delegates all command parsing and execution to the cmd package.
func main() {
	cmd.Execute()
}
