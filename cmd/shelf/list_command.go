package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shelf/internal/catalog"
)

type bookJSON struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	CheckedOut bool   `json:"checked_out"`
	Status     string `json:"status"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var plain bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Display every book in the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, false, func(s *session) error {
				out := cmd.OutOrStdout()
				if jsonOutput {
					books := s.library.Books()
					payload := make([]bookJSON, 0, len(books))
					for _, book := range books {
						payload = append(payload, bookJSON{
							Title:      book.Title,
							Author:     book.Author,
							CheckedOut: book.CheckedOut,
							Status:     book.Status(),
						})
					}
					return writeBooksJSON(out, payload)
				}

				lines, err := s.library.ListAll()
				if errors.Is(err, catalog.ErrEmpty) {
					fmt.Fprintln(out, catalog.Message(err))
					return nil
				}
				if err != nil {
					return err
				}
				if plain {
					for line := range lines {
						fmt.Fprintln(out, line)
					}
					return nil
				}
				fmt.Fprintln(out, renderBookTable(s.library.Books()))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Output fixed-width lines instead of a table")
	return cmd
}

func writeBooksJSON(w io.Writer, books []bookJSON) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(books)
}
