package controller

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/project/studentlibrary/internal/entity"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// booksTable numbers the books from 1 in the given order.
func booksTable(books []entity.Book) string {
	t := newTable("S/N", "TITLE", "AUTHOR", "GENRE", "YEAR", "COPIES")
	for n, b := range books {
		t.Row(strconv.Itoa(n+1), b.Title, b.Author, b.Genre, strconv.Itoa(b.Year), strconv.Itoa(b.Copies))
	}
	return t.String()
}

func studentsTable(members []entity.Member) string {
	t := newTable("STUDENT ID", "NAME")
	for _, m := range members {
		t.Row(m.ID, m.Name)
	}
	return t.String()
}
