package log

import (
	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/pkg/logger"
	"go.uber.org/zap"
)

func InfoBorrowBook(l *zap.Logger, msg string, traceID, memberID, title string, loan ...entity.Loan) {
	if len(loan) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("student_id", memberID),
			zap.String("book_title", title),
			zap.String("action", BorrowBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("student_id", memberID),
		zap.String("book_title", title),
		zap.String("loan_id", loan[0].ID),
		zap.String("due", loan[0].Due),
		zap.String("action", BorrowBook))
}

func ErrorBorrowBook(l *zap.Logger, err error, msg string, traceID, memberID, title string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("student_id", memberID),
		zap.String("book_title", title),
		zap.Error(err),
		zap.String("action", BorrowBook))
}

func InfoReturnBook(l *zap.Logger, msg string, traceID, memberID, title string, receipt ...entity.ReturnReceipt) {
	if len(receipt) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("student_id", memberID),
			zap.String("book_title", title),
			zap.String("action", ReturnBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("student_id", memberID),
		zap.String("book_title", title),
		zap.String("loan_id", receipt[0].Loan.ID),
		zap.Int("days_late", receipt[0].DaysLate),
		zap.String("action", ReturnBook))
}

func WarnReturnBook(l *zap.Logger, msg string, traceID, memberID string, loan entity.Loan) {
	logger.MakeWarn(l, msg,
		zap.String("trace_id", traceID),
		zap.String("student_id", memberID),
		zap.String("book_title", loan.Title),
		zap.String("loan_id", loan.ID),
		zap.String("due", loan.Due),
		zap.String("action", ReturnBook))
}

func ErrorReturnBook(l *zap.Logger, err error, msg string, traceID, memberID, title string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("student_id", memberID),
		zap.String("book_title", title),
		zap.Error(err),
		zap.String("action", ReturnBook))
}
