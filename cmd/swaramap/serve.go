package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swaramap/swaramap/pkg/serve"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming NDJSON server on stdin/stdout",
	Long: `Run swaramap as a long-lived streaming server that accepts requests
via stdin and writes responses via stdout using NDJSON format.

The dataset is loaded once at startup. The server answers match, regions,
region and search requests until stdin closes, a close request arrives, or
SIGTERM is received. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	env, err := openEnv(ctx, nil)
	if err != nil {
		return err
	}
	defer env.Close()

	srv := serve.NewServer(env.core, cmd.InOrStdin(), cmd.OutOrStdout(), serve.WithLogger(env.logger))
	return srv.Run(ctx)
}
