package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"strings"
	"sumSheet/contracts"
)

func NewRootCommand() *cobra.Command {
	config := LoadAppConfig()

	rootCmd := &cobra.Command{
		Use:           "sumsheet",
		Short:         "Sheet of cells holding numbers or sums of other cells",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&config.CellIds, "cells", config.CellIds, "Cell ids, one letter each (env "+cellIdsEnv+")")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sheet HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
			return RunApp(config, logger)
		},
	}
	serveCmd.Flags().StringVar(&config.ListenAddr, "listen", config.ListenAddr, "Listen address (env "+listenAddrEnv+")")

	resolveCmd := &cobra.Command{
		Use:   "resolve ID=INPUT...",
		Short: "Resolve cell inputs once and print every cell",
		Example: `  sumsheet resolve A=5 B=3 C=AB
  sumsheet resolve --cells XYZ X=1.5 Y=XX Z=Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, config, args)
		},
	}

	rootCmd.AddCommand(serveCmd, resolveCmd)

	return rootCmd
}

func runResolve(cmd *cobra.Command, config AppConfig, args []string) error {
	canonicalizer := NewCanonicalizer()

	resolver, err := NewResolver(canonicalizer, config.CellIds)
	if err != nil {
		return err
	}

	sheet := NewSheet(resolver, canonicalizer, nil)
	for _, arg := range args {
		cellId, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("argument `%s`: expected ID=INPUT", arg)
		}

		if _, err = sheet.SetCell(cellId, value); err != nil {
			return err
		}
	}

	return printCells(cmd, sheet.GetCellList())
}

func printCells(cmd *cobra.Command, cells contracts.CellList) error {
	out := cmd.OutOrStdout()

	for _, cell := range cells {
		line := cell.Id + "\t" + cell.Result
		if cell.Formula {
			line += "\t" + FormulaMark + " " + cell.Value
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}
