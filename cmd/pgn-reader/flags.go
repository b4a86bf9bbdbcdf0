// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"
)

var (
	// Modes
	dumpTokens = flag.Bool("tokens", false, "Dump the token stream instead of parsing")
	verbose    = flag.Bool("verbose", false, "Print a summary line for each parsed game")

	// Parsing options
	numWorkers = flag.Int("j", runtime.NumCPU(), "Number of files parsed in parallel")
	progress   = flag.Bool("progress", false, "Report progress while reading large files")

	// Diagnostics
	logFile    = flag.String("log", "", "Write diagnostics to this file instead of stderr")
	cpuProfile = flag.Bool("cpuprofile", false, "Write a CPU profile for this run")

	help        = flag.Bool("h", false, "Show usage information")
	showVersion = flag.Bool("version", false, "Show version information")
)
