package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

var AddBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_add_book_duration_ms",
	Help:    "Duration of AddBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AddBookDuration)
}

func (i *implementation) AddBook(ctx context.Context) {
	start := time.Now()

	defer func() {
		AddBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "AddBook")
	defer span.End()

	var (
		book entity.Book
		ok   bool
	)
	if book.Title, ok = i.prompt("Enter book title: "); !ok {
		return
	}
	if book.Author, ok = i.prompt("Enter book author: "); !ok {
		return
	}
	if book.Genre, ok = i.prompt("Enter book genre: "); !ok {
		return
	}

	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_title", book.Title))

	var err error
	if book.Year, err = i.promptNumber("Enter book year: "); err == nil {
		book.Copies, err = i.promptNumber("Enter number of copies: ")
	}
	if errors.Is(err, errNoInput) {
		return
	}
	if log.ErrorAddBook(i.logger, err, "Got invalid request", traceID, book) {
		span.RecordError(err)
		i.println(i.convertErr(err))
		return
	}

	added, err := i.booksUseCase.AddBook(ctx, book)
	if failed(err) {
		span.RecordError(err)
		i.println(i.convertErr(err))
		return
	}

	i.printf("Book '%s' has been added with ID %d.\n", added.Title, added.ID)
	i.reportSave(err)
}

// promptNumber reads a whole number.
func (i *implementation) promptNumber(msg string) (int, error) {
	answer, ok := i.prompt(msg)
	if !ok {
		return 0, errNoInput
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", entity.ErrValidation, answer)
	}
	return n, nil
}
