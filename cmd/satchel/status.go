package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/satchel"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show bucket sizes and what the last load dropped",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		service, report, err := openService(ctx, true)
		if err != nil {
			fatal("Failed to open archive", err)
		}

		fmt.Printf("archive: %s\n", archivePath)
		for _, key := range satchel.Keys() {
			fmt.Printf("  %-12s %d\n", key, len(service.Items(key)))
		}

		if report.Clean() {
			fmt.Println("load: clean")
			return
		}
		if len(report.UnknownKeys) > 0 {
			fmt.Printf("load: dropped unknown keys: %s\n", strings.Join(report.UnknownKeys, ", "))
		}
		if report.DroppedItems > 0 {
			fmt.Printf("load: dropped %d undecodable item(s)\n", report.DroppedItems)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
