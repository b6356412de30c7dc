package library

import (
	"context"
	"errors"
	"strings"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BorrowBook checks out the first book titled title to a registered student.
// The loan is due entity.LoanPeriodDays after today. With
// entity.ErrPersistence the loan is still recorded and returned.
func (l *libraryImpl) BorrowBook(ctx context.Context, memberID, title string) (entity.Loan, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	memberID, title = strings.TrimSpace(memberID), strings.TrimSpace(title)
	span.SetAttributes(attribute.String("student_id", memberID), attribute.String("book_title", title))
	log.InfoBorrowBook(l.logger, "start of borrow book", traceID, memberID, title)

	var loan entity.Loan
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := l.rosterRepository.Get(memberID); txErr != nil {
			if errors.Is(txErr, entity.ErrMemberNotFound) {
				return entity.ErrMemberNotRegistered
			}
			return txErr
		}

		book, txErr := l.catalogRepository.TakeCopy(title)
		if txErr != nil {
			return txErr
		}

		loan = entity.NewLoan(l.newLoanID(), book.Title, l.now())
		l.ledgerRepository.Append(memberID, loan)
		return nil
	})

	if log.ErrorBorrowBook(l.logger, err, "failed borrow book", traceID, memberID, title) {
		span.RecordError(err)
		if !errors.Is(err, entity.ErrPersistence) {
			return entity.Loan{}, err
		}
		return loan, err
	}

	span.SetAttributes(attribute.String("loan_id", loan.ID))
	log.InfoBorrowBook(l.logger, "borrowed the book", traceID, memberID, title, loan)
	return loan, nil
}

// ReturnBook takes back the student's first loan titled title and reports
// how late it is. A loan whose book left the catalog is still closed; the
// receipt marks it and no copy is added. An unreadable due date counts as
// on time.
func (l *libraryImpl) ReturnBook(ctx context.Context, memberID, title string) (entity.ReturnReceipt, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	memberID, title = strings.TrimSpace(memberID), strings.TrimSpace(title)
	span.SetAttributes(attribute.String("student_id", memberID), attribute.String("book_title", title))
	log.InfoReturnBook(l.logger, "start of return book", traceID, memberID, title)

	var receipt entity.ReturnReceipt
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		loan, txErr := l.ledgerRepository.RemoveFirst(memberID, title)
		if txErr != nil {
			return txErr
		}

		receipt = entity.ReturnReceipt{Loan: loan}
		if _, found := l.catalogRepository.PutCopy(loan.Title); !found {
			receipt.BookMissing = true
		}
		return nil
	})

	if log.ErrorReturnBook(l.logger, err, "failed return book", traceID, memberID, title) {
		span.RecordError(err)
		if !errors.Is(err, entity.ErrPersistence) {
			return entity.ReturnReceipt{}, err
		}
	}

	if receipt.BookMissing {
		log.WarnReturnBook(l.logger, "no catalog record for returned book, copies not incremented", traceID, memberID, receipt.Loan)
	}

	days, dueErr := receipt.Loan.DaysLate(l.now())
	if dueErr != nil {
		receipt.DueUnreadable = true
		log.WarnReturnBook(l.logger, "unreadable due date, treated as on time", traceID, memberID, receipt.Loan)
	}
	receipt.DaysLate = days

	if err != nil {
		return receipt, err
	}

	log.InfoReturnBook(l.logger, "returned the book", traceID, memberID, title, receipt)
	return receipt, nil
}

func (l *libraryImpl) StudentLoans(_ context.Context, memberID string) []entity.Loan {
	return l.ledgerRepository.Loans(strings.TrimSpace(memberID))
}
