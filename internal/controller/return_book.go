package controller

import (
	"context"
	"time"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

var ReturnBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_return_book_duration_ms",
	Help:    "Duration of ReturnBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ReturnBookDuration)
}

// ReturnBook asks for the student first and stops early when they hold no
// loans.
func (i *implementation) ReturnBook(ctx context.Context) {
	start := time.Now()

	defer func() {
		ReturnBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "ReturnBook")
	defer span.End()

	memberID, ok := i.prompt("Enter your student ID to return a book: ")
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("student_id", memberID))

	if len(i.loansUseCase.StudentLoans(ctx, memberID)) == 0 {
		i.println(i.convertErr(entity.ErrNoLoans))
		return
	}

	title, ok := i.prompt("Enter the title of the book you're returning: ")
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("book_title", title))

	receipt, err := i.loansUseCase.ReturnBook(ctx, memberID, title)
	if failed(err) {
		span.RecordError(err)
		i.println(i.convertErr(err))
		return
	}

	i.printf("You have returned '%s'.\n", receipt.Loan.Title)
	switch {
	case receipt.DueUnreadable:
		i.printf("Due date %q could not be read, the book is treated as returned on time.\n", receipt.Loan.Due)
	case receipt.Late():
		i.printf("Book returned late by %d days.\n", receipt.DaysLate)
	default:
		i.println("Book returned on time.")
	}
	if receipt.BookMissing {
		i.println("The book is no longer in the catalog, no copy was added.")
	}
	i.reportSave(err)
}
