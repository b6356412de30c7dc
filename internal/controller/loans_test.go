package controller

import (
	"context"
	"testing"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBorrowBook(t *testing.T) {
	t.Parallel()

	loan := entity.Loan{ID: "l1", Title: "Dune", Borrowed: "2026-03-10", Due: "2026-03-24"}

	tests := []struct {
		name          string
		studentErr    error
		useCaseErr    error
		requireOutput string
	}{
		{
			name:          "borrowed",
			requireOutput: "You have borrowed 'Dune'. Due date: 2026-03-24",
		},
		{
			name:          "not registered",
			studentErr:    entity.ErrMemberNotFound,
			requireOutput: "You are not registered. Please register first before borrowing books.",
		},
		{
			name:          "out of stock",
			useCaseErr:    entity.ErrOutOfStock,
			requireOutput: "'dune' is currently out of stock.",
		},
		{
			name:          "unknown title",
			useCaseErr:    entity.ErrBookNotFound,
			requireOutput: "Book titled 'dune' was not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := []string{"8", "S200", "dune", "q"}
			if tt.studentErr != nil {
				input = []string{"8", "S200", "q"}
			}
			st := initShellTest(t, input...)

			st.students.EXPECT().GetStudent(gomock.Any(), "S200").Return(entity.Member{ID: "S200", Name: "Test User"}, tt.studentErr)
			if tt.studentErr == nil {
				returned := loan
				if tt.useCaseErr != nil {
					returned = entity.Loan{}
				}
				st.loans.EXPECT().BorrowBook(gomock.Any(), "S200", "dune").Return(returned, tt.useCaseErr)
			}

			require.NoError(t, st.service.Serve(context.Background()))
			require.Contains(t, st.out.String(), tt.requireOutput)
		})
	}
}

func TestReturnBook(t *testing.T) {
	t.Parallel()

	loan := entity.Loan{ID: "l1", Title: "Dune", Borrowed: "2026-03-10", Due: "2026-03-24"}

	tests := []struct {
		name           string
		receipt        entity.ReturnReceipt
		useCaseErr     error
		requireOutputs []string
	}{
		{
			name:           "on time",
			receipt:        entity.ReturnReceipt{Loan: loan},
			requireOutputs: []string{"You have returned 'Dune'.", "Book returned on time."},
		},
		{
			name:           "late",
			receipt:        entity.ReturnReceipt{Loan: loan, DaysLate: 6},
			requireOutputs: []string{"Book returned late by 6 days."},
		},
		{
			name:           "unreadable due date",
			receipt:        entity.ReturnReceipt{Loan: entity.Loan{Title: "Dune", Due: "someday"}, DueUnreadable: true},
			requireOutputs: []string{`Due date "someday" could not be read`},
		},
		{
			name:           "book left the catalog",
			receipt:        entity.ReturnReceipt{Loan: loan, BookMissing: true},
			requireOutputs: []string{"Book returned on time.", "no longer in the catalog"},
		},
		{
			name:           "not borrowed",
			useCaseErr:     entity.ErrLoanNotFound,
			requireOutputs: []string{"You didn't borrow this book."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := initShellTest(t, "9", "S200", "dune", "q")
			st.loans.EXPECT().StudentLoans(gomock.Any(), "S200").Return([]entity.Loan{loan})
			st.loans.EXPECT().ReturnBook(gomock.Any(), "S200", "dune").Return(tt.receipt, tt.useCaseErr)

			require.NoError(t, st.service.Serve(context.Background()))
			for _, want := range tt.requireOutputs {
				require.Contains(t, st.out.String(), want)
			}
		})
	}
}

func TestReturnBookWithoutLoans(t *testing.T) {
	t.Parallel()

	st := initShellTest(t, "9", "S200", "q")
	st.loans.EXPECT().StudentLoans(gomock.Any(), "S200").Return(nil)

	require.NoError(t, st.service.Serve(context.Background()))
	require.Contains(t, st.out.String(), "You haven't borrowed any books.")
}
