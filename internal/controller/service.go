package controller

import (
	"bufio"
	"context"
	"io"
	"iter"

	"github.com/project/studentlibrary/internal/entity"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type (
	BooksUseCase interface {
		TotalBooks(ctx context.Context) int
		AddBook(ctx context.Context, book entity.Book) (entity.Book, error)
		ListBooks(ctx context.Context) []entity.Book
		SearchBooks(ctx context.Context, field entity.SearchField, value string) (iter.Seq[entity.Book], error)
		DeleteBooksByTitle(ctx context.Context, title string) ([]entity.Book, error)
		SeedBooks(ctx context.Context) (bool, error)
	}

	StudentsUseCase interface {
		RegisterStudent(ctx context.Context, memberID, name string) (entity.Member, error)
		GetStudent(ctx context.Context, memberID string) (entity.Member, error)
		ListStudents(ctx context.Context) []entity.Member
		DeleteStudent(ctx context.Context, memberID string) error
		SeedStudents(ctx context.Context) (bool, error)
	}

	LoansUseCase interface {
		BorrowBook(ctx context.Context, memberID, title string) (entity.Loan, error)
		ReturnBook(ctx context.Context, memberID, title string) (entity.ReturnReceipt, error)
		StudentLoans(ctx context.Context, memberID string) []entity.Loan
	}
)

const tracerName = "github.com/project/studentlibrary/internal/controller"

type implementation struct {
	logger          *zap.Logger
	tracer          trace.Tracer
	booksUseCase    BooksUseCase
	studentsUseCase StudentsUseCase
	loansUseCase    LoansUseCase
	in              *bufio.Scanner
	out             io.Writer
	seed            bool
}

type Option func(*implementation)

// WithSeed makes viewing an empty catalog or roster fill it with the
// default records first.
func WithSeed(seed bool) Option {
	return func(i *implementation) {
		i.seed = seed
	}
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	studentsUseCase StudentsUseCase,
	loansUseCase LoansUseCase,
	in io.Reader,
	out io.Writer,
	opts ...Option,
) *implementation {
	i := &implementation{
		logger:          logger,
		tracer:          otel.Tracer(tracerName),
		booksUseCase:    booksUseCase,
		studentsUseCase: studentsUseCase,
		loansUseCase:    loansUseCase,
		in:              bufio.NewScanner(in),
		out:             out,
		seed:            true,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}
