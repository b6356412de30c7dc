package controller

import (
	"context"
	"errors"
	"time"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

var RegisterStudentDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_register_student_duration_ms",
	Help:    "Duration of RegisterStudent in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(RegisterStudentDuration)
}

func (i *implementation) RegisterStudent(ctx context.Context) {
	start := time.Now()

	defer func() {
		RegisterStudentDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, "RegisterStudent")
	defer span.End()

	name, ok := i.prompt("Enter student name: ")
	if !ok {
		return
	}
	memberID, ok := i.prompt("Enter student ID: ")
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("student_id", memberID))

	member, err := i.studentsUseCase.RegisterStudent(ctx, memberID, name)
	if errors.Is(err, entity.ErrDuplicateMember) {
		i.printf("Student ID '%s' is already registered.\n", memberID)
		return
	}
	if failed(err) {
		span.RecordError(err)
		i.println(i.convertErr(err))
		return
	}

	i.printf("Student '%s' with ID '%s' has been registered successfully.\n", member.Name, member.ID)
	i.reportSave(err)
}
