package repository

import (
	"context"
	"iter"

	"github.com/project/studentlibrary/internal/entity"
)

type (
	CatalogRepository interface {
		AddBook(book entity.Book) (entity.Book, error)
		FindByTitle(title string) iter.Seq[entity.Book]
		FindByAuthor(author string) iter.Seq[entity.Book]
		FindByGenre(genre string) iter.Seq[entity.Book]
		FindByYear(year int) iter.Seq[entity.Book]
		DeleteByTitle(title string) ([]entity.Book, error)
		TakeCopy(title string) (entity.Book, error)
		PutCopy(title string) (entity.Book, bool)
		BooksAmount() int
		Books() []entity.Book
		Len() int
	}

	RosterRepository interface {
		Register(member entity.Member) error
		Delete(memberID string) (entity.Member, error)
		Get(memberID string) (entity.Member, error)
		List() iter.Seq[entity.Member]
		Len() int
	}

	LedgerRepository interface {
		Append(memberID string, loan entity.Loan)
		RemoveFirst(memberID, title string) (entity.Loan, error)
		Loans(memberID string) []entity.Loan
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}

	// State is the in-memory state guarded by a transactor.
	State interface {
		// Snapshot captures the current state and returns a function
		// restoring it.
		Snapshot() (restore func())
		Save() error
	}
)
