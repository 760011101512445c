package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/carbonnft/internal/buildinfo"
	"github.com/dmitrijs2005/carbonnft/internal/client/cli"
	"github.com/dmitrijs2005/carbonnft/internal/client/client"
	"github.com/dmitrijs2005/carbonnft/internal/client/config"
	"github.com/dmitrijs2005/carbonnft/internal/client/services"
	"github.com/dmitrijs2005/carbonnft/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "carbonnft",
		Short:         "Mint simulated carbon-offset NFTs from the terminal",
		Version:       buildinfo.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	defer db.Close()

	var gen client.ContentGenerator
	gen, err = client.NewGenAIGenerator(ctx, cfg.APIKey, cfg.TextModel, cfg.ImageModel, log)
	if err != nil {
		if errors.Is(err, client.ErrNoAPIKey) {
			log.Warn(ctx, "API_KEY is not set; bookings will fail until it is configured")
		} else {
			log.Error(ctx, "content generator unavailable", "error", err)
		}
		gen = client.NewUnavailableGenerator(err)
	}

	orch := services.NewOrchestrator(gen, db, log, services.Options{
		MintDelay:         cfg.MintDelay,
		GenerationTimeout: cfg.GenerationTimeout,
	})
	orch.Restore(ctx)

	cli.NewApp(orch, log, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
