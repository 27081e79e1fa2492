package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/household-tracker/cmd/add"
	"fjacquet/household-tracker/cmd/categories"
	"fjacquet/household-tracker/cmd/export"
	"fjacquet/household-tracker/cmd/importer"
	"fjacquet/household-tracker/cmd/root"
	"fjacquet/household-tracker/cmd/suggest"
	"fjacquet/household-tracker/cmd/summary"
	"fjacquet/household-tracker/cmd/trips"
	"fjacquet/household-tracker/internal/config"
)

func init() {
	// 1. Load environment variables before viper reads HOUSEHOLD_* values
	config.LoadEnv()

	// 2. Initialize root command flags
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(trips.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importer.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := root.Cmd.ExecuteContext(ctx)
	if closeErr := root.Shutdown(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, root.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}
