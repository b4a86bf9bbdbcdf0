// processor.go - Per-source parsing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pgn-reader-go/internal/chess"
	"github.com/lgbarn/pgn-reader-go/internal/gametree"
	"github.com/lgbarn/pgn-reader-go/internal/pgn"
	"github.com/lgbarn/pgn-reader-go/internal/source"
	"github.com/lgbarn/pgn-reader-go/internal/worker"
)

// progressInterval is how many games pass between progress reports.
const progressInterval = 1000

// processSource parses one source to the end, counting games and
// routing diagnostics to the shared log writer.
func processSource(item worker.WorkItem, diag io.Writer) worker.ProcessResult {
	res := worker.ProcessResult{Name: item.Source.Name(), Index: item.Index}

	if err := item.Source.Open(); err != nil {
		res.Err = err
		return res
	}
	defer item.Source.Close()

	reader := pgn.NewReader(item.Source.Reader(), item.Source.Name())
	reader.SetErrorHandler(pgn.NewSimpleErrorHandler(diag))

	for {
		game, err := reader.ParseGame()
		if err != nil {
			res.Err = err
			return res
		}
		if game == nil {
			return res
		}

		res.Games++
		switch game.Result() {
		case chess.WhiteWins, chess.BlackWins, chess.Draw:
			res.GamesWithResult++
		}
		if game.HasError() {
			res.GamesWithErrors++
		}

		if *verbose {
			printGameSummary(game)
		}
		if *progress && res.Games%progressInterval == 0 {
			reportProgress(item.Source, res.Games)
		}
	}
}

// printGameSummary writes one line per game in verbose mode.
func printGameSummary(game *gametree.Game) {
	white := game.Tag("White")
	if white == "" {
		white = "?"
	}
	black := game.Tag("Black")
	if black == "" {
		black = "?"
	}
	fmt.Printf("%s - %s  %s  (%d plies)\n", white, black, game.Result(), game.PlyCount())
}

// reportProgress writes a progress line for a source being read.
func reportProgress(src source.Source, games int) {
	size := src.Size()
	read := src.BytesRead()
	if size > 0 {
		pct := float64(read) / float64(size) * 100
		if pct > 100 {
			pct = 100
		}
		fmt.Fprintf(os.Stderr, "%s: %d games, %s of %s (%.0f%%)\n",
			src.Name(), games, read, size, pct)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %d games, %s read\n", src.Name(), games, read)
}

// dumpSourceTokens prints a source's token stream to stdout.
func dumpSourceTokens(src source.Source) error {
	if err := src.Open(); err != nil {
		return err
	}
	defer src.Close()

	reader := pgn.NewReader(src.Reader(), src.Name())
	return reader.DumpTokens(os.Stdout)
}
