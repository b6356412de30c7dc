package log

import (
	"github.com/project/studentlibrary/pkg/logger"
	"go.uber.org/zap"
)

func InfoRegisterMember(l *zap.Logger, msg string, traceID, memberID, name string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("student_id", memberID),
		zap.String("student_name", name),
		zap.String("action", RegisterMember))
}

func ErrorRegisterMember(l *zap.Logger, err error, msg string, traceID, memberID, name string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("student_id", memberID),
		zap.String("student_name", name),
		zap.Error(err),
		zap.String("action", RegisterMember))
}

func InfoDeleteMember(l *zap.Logger, msg string, traceID, memberID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("student_id", memberID),
		zap.String("action", DeleteMember))
}

func ErrorDeleteMember(l *zap.Logger, err error, msg string, traceID, memberID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("student_id", memberID),
		zap.Error(err),
		zap.String("action", DeleteMember))
}

func InfoSeedMembers(l *zap.Logger, msg string, traceID string, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("students", count),
		zap.String("action", SeedMembers))
}

func ErrorSeedMembers(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", SeedMembers))
}
