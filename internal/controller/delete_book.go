package controller

import (
	"context"
	"errors"
	"time"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

var DeleteBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_delete_book_duration_ms",
	Help:    "Duration of DeleteBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(DeleteBookDuration)
}

func (i *implementation) DeleteBook(ctx context.Context) {
	start := time.Now()

	defer func() {
		DeleteBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "DeleteBook")
	defer span.End()

	title, ok := i.prompt("Enter the title of the book to delete: ")
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("book_title", title))

	_, err := i.booksUseCase.DeleteBooksByTitle(ctx, title)
	if errors.Is(err, entity.ErrBookNotFound) {
		i.printf("No books titled '%s' found.\n", title)
		return
	}
	if failed(err) {
		span.RecordError(err)
		i.println(i.convertErr(err))
		return
	}

	i.printf("Books titled '%s' have been deleted.\n", title)
	i.reportSave(err)
}
