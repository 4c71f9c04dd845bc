package main

import (
	"context"
	"fmt"
	"os"

	rootcmd "github.com/go-ports/zoo/cmd/zoo/root"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run leaves SIGINT at its default so Ctrl-C ends a session blocked on input.
func run() error {
	return rootcmd.New().ExecuteContext(context.Background())
}
