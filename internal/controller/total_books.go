package controller

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var TotalBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_total_books_duration_ms",
	Help:    "Duration of TotalBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(TotalBooksDuration)
}

func (i *implementation) TotalBooks(ctx context.Context) {
	start := time.Now()

	defer func() {
		TotalBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "TotalBooks")
	defer span.End()

	i.println(i.booksUseCase.TotalBooks(ctx))
}
