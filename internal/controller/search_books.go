package controller

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

var SearchBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_search_books_duration_ms",
	Help:    "Duration of SearchBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(SearchBooksDuration)
}

var searchPrompts = map[entity.SearchField]string{
	entity.SearchByTitle:  "Enter the book title: ",
	entity.SearchByAuthor: "Enter the author's name: ",
	entity.SearchByGenre:  "Enter the book genre: ",
	entity.SearchByYear:   "Enter the year in which the book was published: ",
}

func (i *implementation) SearchBooks(ctx context.Context) {
	start := time.Now()

	defer func() {
		SearchBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "SearchBooks")
	defer span.End()

	answer, ok := i.prompt("What do you search by (title, author, genre, year): ")
	if !ok {
		return
	}
	field, err := entity.ParseSearchField(answer)
	if err != nil {
		span.RecordError(err)
		i.println("Invalid search option.")
		return
	}

	value, ok := i.prompt(searchPrompts[field])
	if !ok {
		return
	}

	span.SetAttributes(attribute.Stringer("search_field", field), attribute.String("search_value", value))

	found, err := i.booksUseCase.SearchBooks(ctx, field, value)
	if err != nil {
		span.RecordError(err)
		i.println(i.convertErr(err))
		return
	}

	books := slices.Collect(found)
	if len(books) == 0 {
		i.println(i.convertErr(entity.ErrBookNotFound))
		return
	}

	i.printf("BOOKS MATCHING %s '%s'\n", strings.ToUpper(field.String()), value)
	i.println(booksTable(books))
}
