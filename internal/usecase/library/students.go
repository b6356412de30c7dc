package library

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var defaultStudents = []entity.Member{
	{ID: "S101", Name: "Alice Johnson"},
	{ID: "S102", Name: "Bob Smith"},
	{ID: "S103", Name: "Charlie Brown"},
	{ID: "S104", Name: "Diana Prince"},
	{ID: "S105", Name: "Ethan Hunt"},
}

func (l *libraryImpl) RegisterStudent(ctx context.Context, memberID, name string) (entity.Member, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	member := entity.Member{
		ID:   strings.TrimSpace(memberID),
		Name: strings.TrimSpace(name),
	}
	span.SetAttributes(attribute.String("student_id", member.ID))
	log.InfoRegisterMember(l.logger, "start of register student", traceID, member.ID, member.Name)

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		return l.rosterRepository.Register(member)
	})

	if log.ErrorRegisterMember(l.logger, err, "failed register student", traceID, member.ID, member.Name) {
		span.RecordError(err)
		if !errors.Is(err, entity.ErrPersistence) {
			return entity.Member{}, err
		}
		return member, err
	}

	log.InfoRegisterMember(l.logger, "registered the student", traceID, member.ID, member.Name)
	return member, nil
}

func (l *libraryImpl) GetStudent(_ context.Context, memberID string) (entity.Member, error) {
	return l.rosterRepository.Get(strings.TrimSpace(memberID))
}

func (l *libraryImpl) ListStudents(_ context.Context) []entity.Member {
	return slices.Collect(l.rosterRepository.List())
}

func (l *libraryImpl) DeleteStudent(ctx context.Context, memberID string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	memberID = strings.TrimSpace(memberID)
	span.SetAttributes(attribute.String("student_id", memberID))
	log.InfoDeleteMember(l.logger, "start of delete student", traceID, memberID)

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		_, txErr := l.rosterRepository.Delete(memberID)
		return txErr
	})

	if log.ErrorDeleteMember(l.logger, err, "failed delete student", traceID, memberID) {
		span.RecordError(err)
		return err
	}

	log.InfoDeleteMember(l.logger, "deleted the student", traceID, memberID)
	return nil
}

// SeedStudents fills an empty roster with the default students. It reports
// whether anything was added.
func (l *libraryImpl) SeedStudents(ctx context.Context) (bool, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	seeded := false
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		if l.rosterRepository.Len() > 0 {
			return nil
		}
		for _, member := range defaultStudents {
			if txErr := l.rosterRepository.Register(member); txErr != nil {
				return txErr
			}
		}
		seeded = true
		return nil
	})

	if log.ErrorSeedMembers(l.logger, err, "failed seed students", traceID) {
		span.RecordError(err)
		return seeded && errors.Is(err, entity.ErrPersistence), err
	}

	if seeded {
		log.InfoSeedMembers(l.logger, "roster seeded with default students", traceID, len(defaultStudents))
	}
	return seeded, nil
}
