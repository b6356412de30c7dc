package log

import (
	"github.com/project/studentlibrary/pkg/logger"
	"go.uber.org/zap"
)

func ErrorSaveDocument(l *zap.Logger, err error, msg string, path string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("path", path),
		zap.Error(err),
		zap.String("action", SaveDocument))
}

func WarnLoadDocument(l *zap.Logger, msg string, path string, fields ...zap.Field) {
	logger.MakeWarn(l, msg, append([]zap.Field{
		zap.String("path", path),
		zap.String("action", LoadDocument),
	}, fields...)...)
}

func InfoLoadDocument(l *zap.Logger, msg string, path string, records int) {
	logger.MakeInfo(l, msg,
		zap.String("path", path),
		zap.Int("records", records),
		zap.String("action", LoadDocument))
}
