// Package main is the entry point for the pitchmetrics CLI tool, which loads
// football match event logs and traces possession sequences after turnovers.
package main

import "github.com/franp/go-pitch-metrics/cmd"

func main() {
	cmd.Execute()
}
