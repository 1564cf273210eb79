package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dm/balena-go/internal/commands"
	"github.com/dm/balena-go/internal/logger"
)

// run executes the command tree with args and returns the process exit code.
func run(ctx context.Context, env *commands.Env, args []string) int {
	root := commands.NewRootCmd(env)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		printError(env.Stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, commands.DefaultEnv(), os.Args[1:])
	stop()
	logger.Sync()
	os.Exit(code)
}
