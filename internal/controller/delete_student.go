package controller

import (
	"context"
	"errors"
	"time"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

var DeleteStudentDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_delete_student_duration_ms",
	Help:    "Duration of DeleteStudent in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(DeleteStudentDuration)
}

func (i *implementation) DeleteStudent(ctx context.Context) {
	start := time.Now()

	defer func() {
		DeleteStudentDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "DeleteStudent")
	defer span.End()

	memberID, ok := i.prompt("Enter student ID to delete: ")
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("student_id", memberID))

	err := i.studentsUseCase.DeleteStudent(ctx, memberID)
	if errors.Is(err, entity.ErrMemberNotFound) {
		i.printf("No student found with ID '%s'.\n", memberID)
		return
	}
	if failed(err) {
		span.RecordError(err)
		i.println(i.convertErr(err))
		return
	}

	i.printf("Student with ID '%s' has been deleted.\n", memberID)
	i.reportSave(err)
}
