// Command reglan enumerates every string in a pattern's language,
// length-ascending, per spec §6.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/konelav/reglan"
	"github.com/konelav/reglan/enum"
	"github.com/konelav/reglan/parser"
)

func main() {
	os.Exit(run())
}

func run() int {
	var limit int
	var offset int
	var silent bool
	var verbose bool
	var showVersion bool
	flag.IntVar(&limit, "n", -1, "emit at most N strings (default unbounded)")
	flag.IntVar(&offset, "o", 0, "skip the first K strings before emitting")
	flag.BoolVar(&silent, "c", false, "silent/count mode: suppress string output, print the final count")
	flag.BoolVar(&verbose, "v", false, "log compile/enumerate diagnostics to stderr")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(reglan.Version)
		return 0
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	pattern := flag.Arg(0)
	if pattern == "" {
		fmt.Fprintf(os.Stderr, "usage: reglan [-n N] [-o K] [-c] PATTERN\n")
		return 1
	}

	logger.Debug("parsing pattern", "pattern", pattern)
	pat, err := parser.New().Parse(pattern)
	if err != nil {
		logger.Warn("parse failed", "pattern", pattern, "error", err)
		fmt.Fprintf(os.Stderr, "reglan: %v\n", err)
		return 1
	}

	if offset < 0 {
		fmt.Fprintf(os.Stderr, "reglan: -o must be non-negative\n")
		return 1
	}
	if limit < 0 {
		limit = math.MaxInt
	}

	d := enum.NewDriver(pat)

	if silent {
		n := d.Count(offset, limit)
		fmt.Println(n)
		return 0
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	d.Emit(offset, limit, func(s string) {
		fmt.Fprintln(w, s)
	})

	logger.Debug("enumeration complete")
	return 0
}
