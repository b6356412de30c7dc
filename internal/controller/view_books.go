package controller

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var ViewBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_view_books_duration_ms",
	Help:    "Duration of ViewBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ViewBooksDuration)
}

func (i *implementation) ViewBooks(ctx context.Context) {
	start := time.Now()

	defer func() {
		ViewBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "ViewBooks")
	defer span.End()

	if i.seed {
		_, err := i.booksUseCase.SeedBooks(ctx)
		if failed(err) {
			span.RecordError(err)
			i.println(i.convertErr(err))
		}
		i.reportSave(err)
	}

	books := i.booksUseCase.ListBooks(ctx)
	if len(books) == 0 {
		i.println("No books available.")
		return
	}

	i.println("LIST OF BOOKS")
	i.println(booksTable(books))
}
