package library

import (
	"context"
	"testing"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/internal/usecase/library/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestBorrowAndReturnScenario(t *testing.T) {
	t.Parallel()
	ctx, env := initLibraryTest(t)

	_, err := env.uc.AddBook(ctx, entity.Book{
		Title: "Dune", Author: "Frank Herbert", Genre: "SciFi", Year: 1965, Copies: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 2, env.uc.TotalBooks(ctx))

	_, err = env.uc.RegisterStudent(ctx, "S200", "Test User")
	require.NoError(t, err)

	loan, err := env.uc.BorrowBook(ctx, "S200", "dune")
	require.NoError(t, err)
	require.Equal(t, "Dune", loan.Title)
	require.Equal(t, "2026-03-10", loan.Borrowed)
	require.Equal(t, "2026-03-24", loan.Due)
	require.NotEmpty(t, loan.ID)
	require.Equal(t, 1, env.book(t, "Dune").Copies)

	_, err = env.uc.BorrowBook(ctx, "S200", "dune")
	require.NoError(t, err)
	require.Equal(t, 0, env.book(t, "Dune").Copies)
	require.Equal(t, 0, env.uc.TotalBooks(ctx))

	_, err = env.uc.BorrowBook(ctx, "S200", "dune")
	require.ErrorIs(t, err, entity.ErrOutOfStock)
	require.Equal(t, 0, env.book(t, "Dune").Copies)
	require.Len(t, env.uc.StudentLoans(ctx, "S200"), 2)

	receipt, err := env.uc.ReturnBook(ctx, "S200", "dune")
	require.NoError(t, err)
	require.False(t, receipt.Late())
	require.False(t, receipt.BookMissing)
	require.False(t, receipt.DueUnreadable)
	require.Equal(t, 1, env.book(t, "Dune").Copies)
	require.Equal(t, 1, env.uc.TotalBooks(ctx))
	require.Len(t, env.uc.StudentLoans(ctx, "S200"), 1)
}

func TestBorrowBookFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		memberID   string
		title      string
		requireErr error
	}{
		{name: "student not registered",
			memberID:   "S999",
			title:      "Dune",
			requireErr: entity.ErrMemberNotRegistered},

		{name: "book not in catalog",
			memberID:   "S200",
			title:      "Ulysses",
			requireErr: entity.ErrBookNotFound},

		{name: "no copies left",
			memberID:   "S200",
			title:      "emma",
			requireErr: entity.ErrOutOfStock},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, env := initLibraryTest(t)
			mustAddBook(t, ctx, env.uc, "Dune", 1)
			mustAddBook(t, ctx, env.uc, "Emma", 0)
			mustRegister(t, ctx, env.uc, "S200")

			loan, err := env.uc.BorrowBook(ctx, test.memberID, test.title)
			require.ErrorIs(t, err, test.requireErr)
			require.Empty(t, loan)
			require.Equal(t, 1, env.uc.TotalBooks(ctx))
			require.Empty(t, env.uc.StudentLoans(ctx, test.memberID))
		})
	}
}

func TestBorrowBookTakesFirstMatchingTitle(t *testing.T) {
	t.Parallel()
	ctx, env := initLibraryTest(t)

	first := mustAddBook(t, ctx, env.uc, "Dune", 1)
	mustAddBook(t, ctx, env.uc, "DUNE", 5)
	mustRegister(t, ctx, env.uc, "S200")

	_, err := env.uc.BorrowBook(ctx, "S200", "dune")
	require.NoError(t, err)

	_, err = env.uc.BorrowBook(ctx, "S200", "dune")
	require.ErrorIs(t, err, entity.ErrOutOfStock)

	books := env.uc.ListBooks(ctx)
	require.Equal(t, first.ID, books[0].ID)
	require.Equal(t, 0, books[0].Copies)
	require.Equal(t, 5, books[1].Copies)
}

func TestReturnBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		memberID        string
		title           string
		returnAfterDays int
		requireErr      error
		requireLate     int
		requireCopies   int
		requireLoans    int
	}{
		{name: "same day",
			memberID:      "S200",
			title:         "DUNE",
			requireCopies: 1,
			requireLoans:  0},

		{name: "on the due date",
			memberID:        "S200",
			title:           "dune",
			returnAfterDays: 14,
			requireCopies:   1,
			requireLoans:    0},

		{name: "six days late",
			memberID:        "S200",
			title:           "dune",
			returnAfterDays: 20,
			requireLate:     6,
			requireCopies:   1,
			requireLoans:    0},

		{name: "student has no loans",
			memberID:      "S300",
			title:         "dune",
			requireErr:    entity.ErrNoLoans,
			requireCopies: 0,
			requireLoans:  0},

		{name: "loan for another title",
			memberID:      "S200",
			title:         "Emma",
			requireErr:    entity.ErrLoanNotFound,
			requireCopies: 0,
			requireLoans:  1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, env := initLibraryTest(t)
			mustAddBook(t, ctx, env.uc, "Dune", 1)
			mustAddBook(t, ctx, env.uc, "Emma", 1)
			mustRegister(t, ctx, env.uc, "S200")
			mustRegister(t, ctx, env.uc, "S300")
			_, err := env.uc.BorrowBook(ctx, "S200", "Dune")
			require.NoError(t, err)

			*env.clock = env.clock.AddDate(0, 0, test.returnAfterDays)
			receipt, err := env.uc.ReturnBook(ctx, test.memberID, test.title)
			require.ErrorIs(t, err, test.requireErr)
			require.Equal(t, test.requireCopies, env.book(t, "Dune").Copies)
			require.Len(t, env.uc.StudentLoans(ctx, "S200"), test.requireLoans)
			if err != nil {
				require.Empty(t, receipt)
				return
			}
			require.Equal(t, test.requireLate, receipt.DaysLate)
			require.Equal(t, "Dune", receipt.Loan.Title)
		})
	}
}

func TestReturnBookMissingFromCatalog(t *testing.T) {
	t.Parallel()
	ctx, env := initLibraryTest(t)

	mustAddBook(t, ctx, env.uc, "Dune", 1)
	mustAddBook(t, ctx, env.uc, "Emma", 4)
	mustRegister(t, ctx, env.uc, "S200")
	_, err := env.uc.BorrowBook(ctx, "S200", "Dune")
	require.NoError(t, err)
	_, err = env.uc.DeleteBooksByTitle(ctx, "Dune")
	require.NoError(t, err)

	receipt, err := env.uc.ReturnBook(ctx, "S200", "dune")
	require.NoError(t, err)
	require.True(t, receipt.BookMissing)
	require.Equal(t, 4, env.uc.TotalBooks(ctx))
	require.Empty(t, env.uc.StudentLoans(ctx, "S200"))
}

func TestReturnBookWithUnreadableDueDate(t *testing.T) {
	t.Parallel()
	ctx, env := initLibraryTest(t)

	mustAddBook(t, ctx, env.uc, "Dune", 0)
	mustRegister(t, ctx, env.uc, "S200")
	env.ledger.Append("S200", entity.Loan{ID: "legacy", Title: "Dune", Borrowed: "yesterday", Due: "soon"})

	receipt, err := env.uc.ReturnBook(ctx, "S200", "Dune")
	require.NoError(t, err)
	require.True(t, receipt.DueUnreadable)
	require.Zero(t, receipt.DaysLate)
	require.Equal(t, 1, env.book(t, "Dune").Copies)
}

func TestBorrowBookKeepsLoanWhenSaveFails(t *testing.T) {
	t.Parallel()
	ctx, env := initLibraryTest(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))

	_, err := env.uc.AddBook(ctx, entity.Book{Title: "Dune", Copies: 1})
	require.ErrorIs(t, err, entity.ErrPersistence)
	_, err = env.uc.RegisterStudent(ctx, "S200", "Test User")
	require.ErrorIs(t, err, entity.ErrPersistence)

	loan, err := env.uc.BorrowBook(ctx, "S200", "Dune")
	require.ErrorIs(t, err, entity.ErrPersistence)
	require.Equal(t, "Dune", loan.Title)
	require.Equal(t, 0, env.uc.TotalBooks(ctx))
	require.Len(t, env.uc.StudentLoans(ctx, "S200"), 1)

	receipt, err := env.uc.ReturnBook(ctx, "S200", "Dune")
	require.ErrorIs(t, err, entity.ErrPersistence)
	require.Equal(t, loan, receipt.Loan)
	require.Equal(t, 1, env.uc.TotalBooks(ctx))
}

func TestLoansWithTransactorError(t *testing.T) {
	t.Parallel()

	logger, err := zap.NewProduction()
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	mockTransactor := mocks.NewMockTransactor(ctrl)
	ctx := context.Background()

	_, env := initLibraryTest(t)
	uc := New(logger, env.catalog, env.roster, env.ledger, mockTransactor)

	mockTransactor.EXPECT().WithTx(ctx, gomock.Any()).Return(errInternal)
	loan, err := uc.BorrowBook(ctx, "S200", "Dune")
	require.ErrorIs(t, err, errInternal)
	require.Empty(t, loan)

	mockTransactor.EXPECT().WithTx(ctx, gomock.Any()).Return(errInternal)
	receipt, err := uc.ReturnBook(ctx, "S200", "Dune")
	require.ErrorIs(t, err, errInternal)
	require.Empty(t, receipt)

	mockTransactor.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, function func(ctx context.Context) error) error {
			return function(ctx)
		})
	_, err = uc.BorrowBook(ctx, "S200", "Dune")
	require.ErrorIs(t, err, entity.ErrMemberNotRegistered)
}
