package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/smartcontractkit/txkit/cmd/txkit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := txkit.BuildTxkitCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}
