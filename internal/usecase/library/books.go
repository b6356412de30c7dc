package library

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/internal/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var defaultBooks = []entity.Book{
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Classic", Year: 1925, Copies: 10},
	{Title: "Becoming", Author: "Michelle Obama", Genre: "Biography", Year: 2018, Copies: 20},
	{Title: "Educated", Author: "Tara Westover", Genre: "Memoir", Year: 2018, Copies: 15},
}

func (l *libraryImpl) TotalBooks(_ context.Context) int {
	return l.catalogRepository.BooksAmount()
}

func (l *libraryImpl) ListBooks(_ context.Context) []entity.Book {
	return l.catalogRepository.Books()
}

func (l *libraryImpl) AddBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoAddBook(l.logger, "start of add book", traceID, book)

	var added entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		added, txErr = l.catalogRepository.AddBook(book)
		return txErr
	})

	if log.ErrorAddBook(l.logger, err, "failed add book", traceID, book) {
		span.RecordError(err)
		if !errors.Is(err, entity.ErrPersistence) {
			return entity.Book{}, err
		}
		return added, err
	}

	span.SetAttributes(attribute.Int("book_id", added.ID))
	log.InfoAddBook(l.logger, "added the book", traceID, added)
	return added, nil
}

// SearchBooks returns the books whose field equals value. Years must be
// integers.
func (l *libraryImpl) SearchBooks(ctx context.Context, field entity.SearchField, value string) (iter.Seq[entity.Book], error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	value = strings.TrimSpace(value)
	log.InfoSearchBooks(l.logger, "start of search books", traceID, field, value)

	var (
		books iter.Seq[entity.Book]
		err   error
	)
	switch field {
	case entity.SearchByTitle:
		books = l.catalogRepository.FindByTitle(value)
	case entity.SearchByAuthor:
		books = l.catalogRepository.FindByAuthor(value)
	case entity.SearchByGenre:
		books = l.catalogRepository.FindByGenre(value)
	case entity.SearchByYear:
		year, convErr := strconv.Atoi(value)
		if convErr != nil {
			err = fmt.Errorf("%w: year %q is not a number", entity.ErrValidation, value)
			break
		}
		books = l.catalogRepository.FindByYear(year)
	default:
		err = fmt.Errorf("%w: unknown search field", entity.ErrValidation)
	}

	if log.ErrorSearchBooks(l.logger, err, "failed search books", traceID, field, value) {
		span.RecordError(err)
		return nil, err
	}
	return books, nil
}

// DeleteBooksByTitle removes every book titled title, ignoring case.
func (l *libraryImpl) DeleteBooksByTitle(ctx context.Context, title string) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	title = strings.TrimSpace(title)
	log.InfoDeleteBook(l.logger, "start of delete books", traceID, title)

	var removed []entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		removed, txErr = l.catalogRepository.DeleteByTitle(title)
		return txErr
	})

	if log.ErrorDeleteBook(l.logger, err, "failed delete books", traceID, title) {
		span.RecordError(err)
		if !errors.Is(err, entity.ErrPersistence) {
			return nil, err
		}
		return removed, err
	}

	log.InfoDeleteBook(l.logger, "deleted the books", traceID, title,
		lo.Map(removed, func(b entity.Book, _ int) int { return b.ID })...)
	return removed, nil
}

// SeedBooks fills an empty catalog with the default books. It reports
// whether anything was added.
func (l *libraryImpl) SeedBooks(ctx context.Context) (bool, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	seeded := false
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		if l.catalogRepository.Len() > 0 {
			return nil
		}
		for _, book := range defaultBooks {
			if _, txErr := l.catalogRepository.AddBook(book); txErr != nil {
				return txErr
			}
		}
		seeded = true
		return nil
	})

	if log.ErrorSeedBooks(l.logger, err, "failed seed books", traceID) {
		span.RecordError(err)
		return seeded && errors.Is(err, entity.ErrPersistence), err
	}

	if seeded {
		log.InfoSeedBooks(l.logger, "catalog seeded with default books", traceID, l.catalogRepository.BooksAmount())
	}
	return seeded, nil
}
