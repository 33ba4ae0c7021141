// Package main provides the CLI entrypoint for litgen.
//
// litgen is a build-time Go code generator that:
//   - Expands literal key/value lists into map constructor functions
//   - Declares zero-sized marker types implementing get.Getter[T]
//   - Checks that committed generated files are up to date
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"

	"litgen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.NewRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}

		os.Exit(1)
	}
}
