package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"shelf/internal/catalog"
)

// renderBookTable lays books out as numbered rows in collection order, with a
// footer counting the books that are out.
func renderBookTable(books []catalog.Book) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Author", "Status"})

	out := 0
	for i, book := range books {
		if book.CheckedOut {
			out++
		}
		tw.AppendRow(table.Row{i + 1, book.Title, book.Author, book.Status()})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d books", len(books)), "", fmt.Sprintf("%d out", out)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, AlignHeader: text.AlignLeft, AlignFooter: text.AlignLeft},
		{Number: 3, AlignHeader: text.AlignLeft},
		{Number: 4, AlignHeader: text.AlignLeft, AlignFooter: text.AlignLeft},
	})
	return tw.Render()
}
