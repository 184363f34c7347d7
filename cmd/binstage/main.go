package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/ZebulonRouseFrantzich/binstage/internal/config"
	"github.com/ZebulonRouseFrantzich/binstage/internal/provision"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := newApp(os.Stdout, os.Stderr).run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// usageError marks failures caused by how binstage was invoked. The usage
// line is printed after the error message.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// run executes the CLI and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	cmd := a.rootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	printError(a.stderr, err, a.verbose())
	return 1
}

func printError(w io.Writer, err error, verbose bool) {
	fmt.Fprintf(w, "Error: %s\n", config.FormatError(err, verbose))

	var uerr usageError
	if errors.Is(err, provision.ErrUnknownCommand) || errors.As(err, &uerr) {
		fmt.Fprintln(w, provision.Usage)
	}
}
