package controller

import (
	"context"
	"errors"
	"time"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

var BorrowBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_borrow_book_duration_ms",
	Help:    "Duration of BorrowBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(BorrowBookDuration)
}

// BorrowBook asks for the student first and stops early for an unknown one.
func (i *implementation) BorrowBook(ctx context.Context) {
	start := time.Now()

	defer func() {
		BorrowBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "BorrowBook")
	defer span.End()

	memberID, ok := i.prompt("Enter your student ID to borrow a book: ")
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("student_id", memberID))

	if _, err := i.studentsUseCase.GetStudent(ctx, memberID); err != nil {
		if errors.Is(err, entity.ErrMemberNotFound) {
			err = entity.ErrMemberNotRegistered
		}
		i.println(i.convertErr(err))
		return
	}

	title, ok := i.prompt("Enter the title of the book you want to borrow: ")
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("book_title", title))

	loan, err := i.loansUseCase.BorrowBook(ctx, memberID, title)
	switch {
	case errors.Is(err, entity.ErrOutOfStock):
		i.printf("'%s' is currently out of stock.\n", title)
		return
	case errors.Is(err, entity.ErrBookNotFound):
		i.printf("Book titled '%s' was not found.\n", title)
		return
	case failed(err):
		span.RecordError(err)
		i.println(i.convertErr(err))
		return
	}

	i.printf("You have borrowed '%s'. Due date: %s\n", loan.Title, loan.Due)
	i.reportSave(err)
}
