package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"shelf/internal/catalog"
	"shelf/internal/logging"
)

const menuTitle = "Library Management System"

var menuOptions = []string{
	"Add Book",
	"Remove Book",
	"Check Out Book",
	"Return Book",
	"Display Books",
	"Save and Exit",
}

const (
	choiceAdd = iota + 1
	choiceRemove
	choiceCheckOut
	choiceReturn
	choiceDisplay
	choiceSaveExit
)

func newMenuCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, ctx)
		},
	}
}

func runMenu(cmd *cobra.Command, ctx *commandContext) error {
	s, err := ctx.openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	runCtx := commandCtx(cmd)
	input := newLineReader(cmd.InOrStdin())
	defer input.stop()

	m := &menu{
		input:    input,
		out:      cmd.OutOrStdout(),
		session:  s,
		colorize: shouldColorize(cmd.OutOrStdout()),
	}
	if s.loadErr != nil {
		m.println(statusInfo, catalog.Message(s.loadErr))
	}
	return m.run(runCtx)
}

// menu reads one choice per line until Save and Exit or end of input. End of
// input and cancellation both leave without saving.
type menu struct {
	input    *lineReader
	out      io.Writer
	session  *session
	colorize bool
	// err is the reason input stopped, nil at end of input.
	err error
}

func (m *menu) run(ctx context.Context) error {
	for {
		m.printMenu()
		line, ok := m.readLine(ctx)
		if !ok {
			fmt.Fprintln(m.out)
			m.session.logger.Info("menu closed without saving",
				logging.String(logging.FieldEventType, "menu_closed"),
				logging.Bool("cancelled", ctx.Err() != nil))
			return m.err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.println(statusError, "Invalid choice. Please try again.")
			continue
		}

		switch choice {
		case choiceAdd:
			m.add(ctx)
		case choiceRemove:
			m.remove(ctx)
		case choiceCheckOut:
			m.checkOut(ctx)
		case choiceReturn:
			m.returnBook(ctx)
		case choiceDisplay:
			m.display()
		case choiceSaveExit:
			m.saveAndExit(ctx)
			return nil
		default:
			m.println(statusError, "Invalid choice. Please try again.")
		}
	}
}

func (m *menu) add(ctx context.Context) {
	title, ok := m.prompt(ctx, "Enter book title: ")
	if !ok {
		return
	}
	author, ok := m.prompt(ctx, "Enter book author: ")
	if !ok {
		return
	}
	m.session.library.Add(catalog.NewBook(title, author))
	m.println(statusOK, "Book added successfully.")
	m.autosave(ctx)
}

func (m *menu) remove(ctx context.Context) {
	title, ok := m.prompt(ctx, "Enter book title to remove: ")
	if !ok {
		return
	}
	removed := m.session.library.Remove(title)
	m.println(statusOK, removedMessage(removed))
	if removed > 0 {
		m.autosave(ctx)
	}
}

func (m *menu) checkOut(ctx context.Context) {
	title, ok := m.prompt(ctx, "Enter book title to check out: ")
	if !ok {
		return
	}
	book, err := m.session.library.CheckOut(title)
	if err != nil {
		m.println(statusError, catalog.Message(err))
		return
	}
	m.println(statusOK, checkedOutMessage(book))
	m.autosave(ctx)
}

func (m *menu) returnBook(ctx context.Context) {
	title, ok := m.prompt(ctx, "Enter book title to return: ")
	if !ok {
		return
	}
	book, err := m.session.library.Return(title)
	if err != nil {
		m.println(statusError, catalog.Message(err))
		return
	}
	m.println(statusOK, returnedMessage(book))
	m.autosave(ctx)
}

func (m *menu) display() {
	if _, err := m.session.library.ListAll(); errors.Is(err, catalog.ErrEmpty) {
		m.println(statusInfo, catalog.Message(err))
		return
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, renderBookTable(m.session.library.Books()))
}

func (m *menu) saveAndExit(ctx context.Context) {
	if !m.session.cfg.Session.SaveOnExit {
		m.println(statusInfo, "Exiting without saving.")
		return
	}
	if err := m.session.save(ctx); err != nil {
		m.println(statusError, catalog.Message(err))
		return
	}
	m.println(statusOK, "Library data saved. Exiting.")
}

func (m *menu) autosave(ctx context.Context) {
	if !m.session.cfg.Session.Autosave {
		return
	}
	if err := m.session.save(ctx); err != nil {
		m.println(statusError, catalog.Message(err))
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out)
	for _, line := range renderBanner(menuTitle, m.colorize) {
		fmt.Fprintln(m.out, line)
	}
	for i, option := range menuOptions {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, option)
	}
	fmt.Fprint(m.out, "Choose an option: ")
}

func (m *menu) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine(ctx)
}

func (m *menu) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		m.err = ctx.Err()
		return "", false
	case line, ok := <-m.input.lines:
		if !ok {
			m.err = m.input.err
			return "", false
		}
		return strings.TrimRight(line, "\r"), true
	}
}

// lineReader scans lines on its own goroutine so a blocked terminal read
// never holds up cancellation.
type lineReader struct {
	lines <-chan string
	done  chan struct{}
	// err is set before lines is closed.
	err error
}

func newLineReader(r io.Reader) *lineReader {
	lines := make(chan string)
	lr := &lineReader{lines: lines, done: make(chan struct{})}
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-lr.done:
				return
			}
		}
		lr.err = scanner.Err()
	}()
	return lr
}

func (lr *lineReader) stop() {
	close(lr.done)
}

func (m *menu) println(kind statusKind, message string) {
	fmt.Fprintln(m.out, renderStatus(kind, message, m.colorize))
}
