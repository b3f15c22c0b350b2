package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/satchel"
	"github.com/spf13/cobra"
)

var (
	eventKey         string
	eventTitle       string
	eventDescription string
	eventDate        string
	noteText         string
)

// addEventCmd represents the add-event command
var addEventCmd = &cobra.Command{
	Use:   "add-event",
	Short: "Add an event under homeEvents or workEvents and save the archive",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		key, ok := satchel.ParseKey(eventKey)
		if !ok {
			fatal("Invalid key", fmt.Errorf("%q is not one of homeEvents, workEvents, notes", eventKey))
		}

		date := time.Now()
		if eventDate != "" {
			parsed, err := time.Parse(time.RFC3339, eventDate)
			if err != nil {
				fatal("Invalid --date (want RFC 3339, e.g. 2024-03-01T09:00:00Z)", err)
			}
			date = parsed
		}

		service, _, err := openService(ctx, false)
		if err != nil {
			fatal("Failed to open archive", err)
		}

		event := satchel.Event{Date: date, Title: eventTitle, Description: eventDescription}
		if err := service.Add(ctx, event, key); err != nil {
			fatal("Failed to add event", err)
		}
		if err := service.Save(ctx); err != nil {
			fatal("Failed to save archive", err)
		}

		fmt.Printf("Event %q added under %s.\n", eventTitle, key)
	},
}

// addNoteCmd represents the add-note command
var addNoteCmd = &cobra.Command{
	Use:   "add-note",
	Short: "Add a note and save the archive",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		service, _, err := openService(ctx, false)
		if err != nil {
			fatal("Failed to open archive", err)
		}

		if err := service.Add(ctx, satchel.Note{Text: noteText}, satchel.Notes); err != nil {
			fatal("Failed to add note", err)
		}
		if err := service.Save(ctx); err != nil {
			fatal("Failed to save archive", err)
		}

		fmt.Println("Note added.")
	},
}

func init() {
	rootCmd.AddCommand(addEventCmd)
	addEventCmd.Flags().StringVarP(&eventKey, "key", "k", "homeEvents", "Bucket key (homeEvents or workEvents)")
	addEventCmd.Flags().StringVarP(&eventTitle, "title", "t", "", "Event title")
	addEventCmd.Flags().StringVarP(&eventDescription, "description", "d", "", "Event description")
	addEventCmd.Flags().StringVar(&eventDate, "date", "", "Event date, RFC 3339 (defaults to now)")
	addEventCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(addNoteCmd)
	addNoteCmd.Flags().StringVarP(&noteText, "text", "t", "", "Note text")
	addNoteCmd.MarkFlagRequired("text")
}
