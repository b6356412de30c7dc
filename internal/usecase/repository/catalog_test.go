package repository

import (
	"slices"
	"testing"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/stretchr/testify/require"
)

func newFilledCatalog(t *testing.T) *catalogRepository {
	t.Helper()
	c := NewCatalog()
	for _, b := range []entity.Book{
		{Title: "Dune", Author: "Frank Herbert", Genre: "SciFi", Year: 1965, Copies: 2},
		{Title: "Emma", Author: "Jane Austen", Genre: "Classic", Year: 1815, Copies: 0},
		{Title: "dune", Author: "Other", Genre: "Parody", Year: 1999, Copies: 3},
	} {
		_, err := c.AddBook(b)
		require.NoError(t, err)
	}
	return c
}

func Test_catalogRepository_AddBook(t *testing.T) {
	t.Parallel()

	c := newFilledCatalog(t)
	require.Equal(t, 5, c.BooksAmount())
	require.Equal(t, []int{1, 2, 3}, ids(c.Books()))
	require.True(t, c.isDirty())

	_, err := c.AddBook(entity.Book{Title: "Bad", Copies: -4})
	require.ErrorIs(t, err, entity.ErrValidation)
	require.Equal(t, 5, c.BooksAmount())
	require.Equal(t, 3, c.Len())
}

func Test_catalogRepository_Find(t *testing.T) {
	t.Parallel()

	c := newFilledCatalog(t)
	require.Equal(t, []int{1, 3}, ids(slices.Collect(c.FindByTitle("DUNE"))))
	require.Equal(t, []int{2}, ids(slices.Collect(c.FindByAuthor("jane austen"))))
	require.Equal(t, []int{3}, ids(slices.Collect(c.FindByGenre("parody"))))
	require.Equal(t, []int{1}, ids(slices.Collect(c.FindByYear(1965))))
	require.Empty(t, slices.Collect(c.FindByYear(2000)))

	books := c.FindByTitle("dune")
	_, err := c.AddBook(entity.Book{Title: "Dune", Copies: 1})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, ids(slices.Collect(books)), "sequence reads the catalog as of the call")

	for b := range books {
		require.Equal(t, 1, b.ID)
		break
	}
}

func Test_catalogRepository_DeleteByTitle(t *testing.T) {
	t.Parallel()

	c := newFilledCatalog(t)
	c.markClean()

	_, err := c.DeleteByTitle("Ulysses")
	require.ErrorIs(t, err, entity.ErrBookNotFound)
	require.False(t, c.isDirty())

	removed, err := c.DeleteByTitle("Dune")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, ids(removed))
	require.Equal(t, 0, c.BooksAmount())
	require.Equal(t, []int{2}, ids(c.Books()))
	require.True(t, c.isDirty())
}

func Test_catalogRepository_Copies(t *testing.T) {
	t.Parallel()

	c := newFilledCatalog(t)

	book, err := c.TakeCopy("DUNE")
	require.NoError(t, err)
	require.Equal(t, 1, book.ID)
	require.Equal(t, 1, book.Copies)
	require.Equal(t, 4, c.BooksAmount())

	_, err = c.TakeCopy("emma")
	require.ErrorIs(t, err, entity.ErrOutOfStock)
	require.Equal(t, 4, c.BooksAmount())

	_, err = c.TakeCopy("Ulysses")
	require.ErrorIs(t, err, entity.ErrBookNotFound)

	book, ok := c.PutCopy("emma")
	require.True(t, ok)
	require.Equal(t, 1, book.Copies)
	require.Equal(t, 5, c.BooksAmount())

	_, ok = c.PutCopy("Ulysses")
	require.False(t, ok)
	require.Equal(t, 5, c.BooksAmount())
}

func Test_catalogRepository_Snapshot(t *testing.T) {
	t.Parallel()

	c := newFilledCatalog(t)
	c.markClean()
	restore := c.Snapshot()

	_, err := c.TakeCopy("Dune")
	require.NoError(t, err)
	_, err = c.AddBook(entity.Book{Title: "New", Copies: 7})
	require.NoError(t, err)
	_, err = c.DeleteByTitle("Emma")
	require.NoError(t, err)

	restore()
	require.Equal(t, 5, c.BooksAmount())
	require.Equal(t, []int{1, 2, 3}, ids(c.Books()))
	require.Equal(t, 2, c.Books()[0].Copies)
	require.False(t, c.isDirty())

	book, err := c.AddBook(entity.Book{Title: "Again", Copies: 1})
	require.NoError(t, err)
	require.Equal(t, 4, book.ID)
}

func Test_catalogRepository_reset(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	c.reset([]entity.Book{
		{ID: 7, Title: "A", Copies: 1},
		{ID: 3, Title: "B", Copies: 4},
	})
	require.Equal(t, 5, c.BooksAmount())
	require.False(t, c.isDirty())

	book, err := c.AddBook(entity.Book{Title: "C"})
	require.NoError(t, err)
	require.Equal(t, 8, book.ID)
}

func ids(books []entity.Book) []int {
	out := make([]int, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}
