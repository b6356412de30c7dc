package controller

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var ListStudentsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_list_students_duration_ms",
	Help:    "Duration of ListStudents in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ListStudentsDuration)
}

func (i *implementation) ListStudents(ctx context.Context) {
	start := time.Now()

	defer func() {
		ListStudentsDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "ListStudents")
	defer span.End()

	if i.seed {
		_, err := i.studentsUseCase.SeedStudents(ctx)
		if failed(err) {
			span.RecordError(err)
			i.println(i.convertErr(err))
		}
		i.reportSave(err)
	}

	members := i.studentsUseCase.ListStudents(ctx)
	if len(members) == 0 {
		i.println("No students registered.")
		return
	}

	i.println("Registered Students:")
	i.println(studentsTable(members))
}
