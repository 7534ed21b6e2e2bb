package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelf/internal/catalog"
)

func newBookCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newAddCommand(ctx),
		newRemoveCommand(ctx),
		newFindCommand(ctx),
		newCheckOutCommand(ctx),
		newReturnCommand(ctx),
	}
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <author>",
		Short: "Add a book to the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, true, func(s *session) error {
				s.library.Add(catalog.NewBook(args[0], args[1]))
				fmt.Fprintln(cmd.OutOrStdout(), "Book added successfully.")
				return nil
			})
		},
	}
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove every book with the given title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, true, func(s *session) error {
				fmt.Fprintln(cmd.OutOrStdout(), removedMessage(s.library.Remove(args[0])))
				return nil
			})
		},
	}
}

func newFindCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "find <title>",
		Short: "Show the first book with the given title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, false, func(s *session) error {
				book, err := s.library.Find(args[0])
				if err != nil {
					return userError(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), book.Describe())
				return nil
			})
		},
	}
}

func newCheckOutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "checkout <title>",
		Aliases: []string{"check-out"},
		Short:   "Check out a book",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, true, func(s *session) error {
				book, err := s.library.CheckOut(args[0])
				if err != nil {
					return userError(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), checkedOutMessage(book))
				return nil
			})
		},
	}
}

func newReturnCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "return <title>",
		Short: "Return a checked out book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, true, func(s *session) error {
				book, err := s.library.Return(args[0])
				if err != nil {
					return userError(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), returnedMessage(book))
				return nil
			})
		},
	}
}

func removedMessage(count int) string {
	switch count {
	case 0:
		return "No matching book found; nothing removed."
	case 1:
		return "Book removed successfully."
	default:
		return fmt.Sprintf("%d books removed successfully.", count)
	}
}

func checkedOutMessage(book catalog.Book) string {
	return "You have checked out: " + book.Describe()
}

func returnedMessage(book catalog.Book) string {
	return "You have returned: " + book.Describe()
}
