package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/satchel"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	archivePath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "satchel",
	Short: "A pocket database of typed, keyed collections in a single archive file",
	Long: `Satchel groups events and notes under typed keys and persists the whole
container to one archive file (JSON, YAML, or MessagePack by extension).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openService loads the archive named by --file, tolerating a missing one
// unless mustExist is set.
func openService(ctx context.Context, mustExist bool) (*satchel.Service, satchel.Report, error) {
	return satchel.Open(ctx, archivePath,
		satchel.WithLogger(slog.Default()),
		satchel.WithMustExist(mustExist),
	)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&archivePath, "file", "f", "satchel.msgpack", "Archive file path")
}
