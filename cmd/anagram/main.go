// Package main provides the anagram CLI.
// Usage: anagram [-limit N] [-json] <letters>
//
// It prints the number of distinct arrangements of the letters. With -limit
// it also prints up to N arrangements, one per line; with -json it prints the
// same body the /shuffle endpoint returns.
//
// A lone argument that fails flag parsing, such as "-abc", is treated as
// letters and rejected as invalid. Bad flags next to other arguments print
// usage and exit 2.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"anagram-shuffle/internal/common/pagination"
	"anagram-shuffle/internal/domain/anagram"
	"anagram-shuffle/internal/observability/logging"
	"anagram-shuffle/internal/usecase/shuffle"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2

	// invalidInput stands in for anything that is not exactly one argument,
	// so it always fails validation.
	invalidInput = "!"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var usage bytes.Buffer
	fs := flag.NewFlagSet("anagram", flag.ContinueOnError)
	fs.SetOutput(&usage)
	limit := fs.Int("limit", 0, "also print up to N arrangements (0-25)")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: anagram [-limit N] [-json] <letters>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			_, _ = usage.WriteTo(stderr)
			return exitOK
		case len(args) == 1:
			fmt.Fprintln(stderr, "invalid")
			return exitInvalid
		default:
			_, _ = usage.WriteTo(stderr)
			return exitUsage
		}
	}

	logger := logging.NewTextLogger(stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")))
	ctx := logging.WithLogger(context.Background(), logger)

	input := ""
	switch fs.NArg() {
	case 0:
	case 1:
		input = fs.Arg(0)
	default:
		logger.Debug("too many arguments", slog.Int("count", fs.NArg()))
		input = invalidInput
	}

	page := pagination.DefaultConfig().Clamp(*limit)
	svc := &shuffle.Service{}

	if page == 0 && !*asJSON {
		total, err := svc.Count(ctx, input)
		if code, done := reportError(err, stdout, stderr); done {
			return code
		}
		fmt.Fprintln(stdout, total.String())
		return exitOK
	}

	res, err := svc.Shuffle(ctx, input, page)
	if code, done := reportError(err, stdout, stderr); done {
		return code
	}

	if *asJSON {
		if err := json.NewEncoder(stdout).Encode(res); err != nil {
			logger.Error("failed to encode result", slog.Any("error", err))
			return exitInvalid
		}
		return exitOK
	}

	fmt.Fprintln(stdout, res.Total.String())
	for _, arrangement := range res.Page {
		fmt.Fprintln(stdout, arrangement)
	}
	return exitOK
}

// reportError prints the outcome of a rejected input and reports whether
// run should stop.
func reportError(err error, stdout, stderr io.Writer) (int, bool) {
	switch {
	case err == nil:
		return exitOK, false
	case errors.Is(err, anagram.ErrEmptyInput):
		fmt.Fprintln(stdout, "empty")
		return exitOK, true
	default:
		fmt.Fprintln(stderr, "invalid")
		return exitInvalid, true
	}
}
