// pgn-reader parses PGN chess game files, replaying every move against
// the rules of the game and reporting syntax problems as it goes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/lgbarn/pgn-reader-go/internal/source"
	"github.com/lgbarn/pgn-reader-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Printf("pgn-reader version %s\n", programVersion)
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	diag, closeDiag := setupDiagnostics()
	defer closeDiag()

	sources := collectSources(flag.Args())
	if len(sources) == 0 {
		fmt.Fprintln(os.Stderr, "no readable PGN inputs")
		os.Exit(1)
	}

	if *dumpTokens {
		for _, src := range sources {
			if err := dumpSourceTokens(src); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", src.Name(), err)
				os.Exit(1)
			}
		}
		return
	}

	start := time.Now()
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return processSource(item, diag)
	}, worker.WithWorkers(*numWorkers))
	pool.Start()

	go func() {
		for i, src := range sources {
			pool.Submit(worker.WorkItem{Source: src, Index: i})
		}
		pool.Close()
	}()

	var games, withResult, withErrors int
	failed := false
	for res := range pool.Results() {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Name, res.Err)
			failed = true
			continue
		}
		games += res.Games
		withResult += res.GamesWithResult
		withErrors += res.GamesWithErrors
	}

	elapsed := time.Since(start)
	fmt.Printf("%d games found, %d with result\n", games, withResult)
	if withErrors > 0 {
		fmt.Printf("%d games with errors\n", withErrors)
	}
	fmt.Printf("%dms  %d games / s\n", elapsed.Milliseconds(), gamesPerSecond(games, elapsed))

	if failed {
		os.Exit(1)
	}
}

// gamesPerSecond computes the parse rate, tolerating very short runs.
func gamesPerSecond(games int, elapsed time.Duration) int {
	ms := elapsed.Milliseconds()
	if ms <= 0 {
		return games
	}
	return int(1000 * int64(games) / ms)
}

// setupDiagnostics returns the writer syntax diagnostics go to, by
// default stderr, and a function closing it.
func setupDiagnostics() (io.Writer, func()) {
	if *logFile == "" {
		return os.Stderr, func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	return file, func() { file.Close() }
}

// collectSources turns the command-line arguments into sources,
// expanding directories and skipping unreadable paths with a warning.
func collectSources(paths []string) []source.Source {
	var sources []source.Source
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		if stat.IsDir() {
			dirSources, err := source.FromDir(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				continue
			}
			sources = append(sources, dirSources...)
			continue
		}
		src, err := source.FromPath(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		sources = append(sources, src)
	}
	return sources
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgn-reader [options] file.pgn[.gz|.zst|.bz2|.zip] ...\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
