package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/satchel"
	"github.com/spf13/cobra"
)

var (
	listKey  string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items in the archive",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		service, _, err := openService(ctx, true)
		if err != nil {
			fatal("Failed to open archive", err)
		}

		keys := satchel.Keys()
		if listKey != "" {
			key, ok := satchel.ParseKey(listKey)
			if !ok {
				fatal("Invalid key", fmt.Errorf("%q is not one of homeEvents, workEvents, notes", listKey))
			}
			keys = []satchel.Key{key}
		}

		if listJSON {
			out := make(map[string][]satchel.Item, len(keys))
			for _, key := range keys {
				out[key.String()] = service.Items(key)
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, key := range keys {
			items := service.Items(key)
			fmt.Printf("%s (%d)\n", key, len(items))
			for _, item := range items {
				switch v := item.(type) {
				case satchel.Event:
					fmt.Printf("  %s  %s - %s\n", v.Date.Format(time.RFC3339), v.Title, v.Description)
				case satchel.Note:
					fmt.Printf("  %s\n", v.Text)
				default:
					fmt.Printf("  %v\n", v)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listKey, "key", "k", "", "Only list this bucket")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
