package library

import (
	"context"
	"iter"

	"github.com/project/studentlibrary/internal/entity"
)

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
