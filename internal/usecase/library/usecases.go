package library

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/project/studentlibrary/internal/entity"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usecases.go -destination=mocks/usecases_mock.go -package=mocks Transactor

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
)

var _ BooksUseCase = (*libraryImpl)(nil)
var _ StudentsUseCase = (*libraryImpl)(nil)
var _ LoansUseCase = (*libraryImpl)(nil)

type libraryImpl struct {
	logger            *zap.Logger
	catalogRepository CatalogRepository
	rosterRepository  RosterRepository
	ledgerRepository  LedgerRepository
	transactor        Transactor
	now               func() time.Time
	newLoanID         func() string
}

type Option func(*libraryImpl)

// WithClock replaces time.Now as the source of today's date.
func WithClock(now func() time.Time) Option {
	return func(l *libraryImpl) {
		l.now = now
	}
}

func New(
	logger *zap.Logger,
	catalogRepository CatalogRepository,
	rosterRepository RosterRepository,
	ledgerRepository LedgerRepository,
	transactor Transactor,
	opts ...Option,
) *libraryImpl {
	l := &libraryImpl{
		logger:            logger,
		catalogRepository: catalogRepository,
		rosterRepository:  rosterRepository,
		ledgerRepository:  ledgerRepository,
		transactor:        transactor,
		now:               time.Now,
		newLoanID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
