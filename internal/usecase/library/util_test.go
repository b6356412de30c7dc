package library

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/internal/usecase/repository"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	booksFile    = "books.json"
	studentsFile = "students.json"
)

var (
	errInternal = errors.New("internal error")
	today       = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
)

type testEnv struct {
	fs      afero.Fs
	catalog repository.CatalogRepository
	roster  repository.RosterRepository
	ledger  repository.LedgerRepository
	clock   *time.Time
	uc      *libraryImpl
}

func initLibraryTest(t *testing.T, fsys ...afero.Fs) (context.Context, *testEnv) {
	t.Helper()

	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	env := &testEnv{fs: afero.NewMemMapFs()}
	if len(fsys) > 0 {
		env.fs = fsys[0]
	}

	storage := repository.NewFileStorage(logger, env.fs, repository.Paths{
		Books:    booksFile,
		Students: studentsFile,
	})
	env.catalog, env.roster, env.ledger = storage.Catalog(), storage.Roster(), storage.Ledger()

	clock := today
	env.clock = &clock
	env.uc = New(logger, storage.Catalog(), storage.Roster(), storage.Ledger(),
		repository.NewTransactor(logger, storage),
		WithClock(func() time.Time { return *env.clock }))

	return context.Background(), env
}

func (e *testEnv) book(t *testing.T, title string) entity.Book {
	t.Helper()
	books := slices.Collect(e.catalog.FindByTitle(title))
	require.NotEmpty(t, books, "book %q not in catalog", title)
	return books[0]
}

func mustAddBook(t *testing.T, ctx context.Context, uc *libraryImpl, title string, copies int) entity.Book {
	t.Helper()
	book, err := uc.AddBook(ctx, entity.Book{
		Title:  title,
		Author: "Author of " + title,
		Genre:  "Genre",
		Year:   2000,
		Copies: copies,
	})
	require.NoError(t, err)
	return book
}

func mustRegister(t *testing.T, ctx context.Context, uc *libraryImpl, id string) {
	t.Helper()
	_, err := uc.RegisterStudent(ctx, id, "Student "+id)
	require.NoError(t, err)
}
