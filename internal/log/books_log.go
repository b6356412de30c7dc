package log

import (
	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/pkg/logger"
	"go.uber.org/zap"
)

func InfoAddBook(l *zap.Logger, msg string, traceID string, book entity.Book) {
	fields := []zap.Field{
		zap.String("trace_id", traceID),
		zap.String("book_title", book.Title),
		zap.String("book_author", book.Author),
		zap.Int("book_copies", book.Copies),
		zap.String("action", AddBook),
	}
	if book.ID != 0 {
		fields = append(fields, zap.Int("book_id", book.ID))
	}
	logger.MakeInfo(l, msg, fields...)
}

func ErrorAddBook(l *zap.Logger, err error, msg string, traceID string, book entity.Book) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", book.Title),
		zap.Int("book_copies", book.Copies),
		zap.Error(err),
		zap.String("action", AddBook))
}

func InfoSearchBooks(l *zap.Logger, msg string, traceID string, field entity.SearchField, value string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Stringer("search_field", field),
		zap.String("search_value", value),
		zap.String("action", SearchBooks))
}

func ErrorSearchBooks(l *zap.Logger, err error, msg string, traceID string, field entity.SearchField, value string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Stringer("search_field", field),
		zap.String("search_value", value),
		zap.Error(err),
		zap.String("action", SearchBooks))
}

func InfoDeleteBook(l *zap.Logger, msg string, traceID, title string, removed ...int) {
	if len(removed) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("book_title", title),
			zap.String("action", DeleteBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.Ints("book_ids", removed),
		zap.String("action", DeleteBook))
}

func ErrorDeleteBook(l *zap.Logger, err error, msg string, traceID, title string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.Error(err),
		zap.String("action", DeleteBook))
}

func InfoSeedBooks(l *zap.Logger, msg string, traceID string, total int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("total_copies", total),
		zap.String("action", SeedBooks))
}

func ErrorSeedBooks(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", SeedBooks))
}
