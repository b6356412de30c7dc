package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/project/studentlibrary/internal/controller/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var errInternal = errors.New("internal error")

type shellTest struct {
	books    *mocks.MockBooksUseCase
	students *mocks.MockStudentsUseCase
	loans    *mocks.MockLoansUseCase
	out      *bytes.Buffer
	service  *implementation
}

// initShellTest builds a shell over mocked use cases reading the given
// input lines.
func initShellTest(t *testing.T, lines ...string) *shellTest {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	st := &shellTest{
		books:    mocks.NewMockBooksUseCase(ctrl),
		students: mocks.NewMockStudentsUseCase(ctrl),
		loans:    mocks.NewMockLoansUseCase(ctrl),
		out:      &bytes.Buffer{},
	}
	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	st.service = New(logger, st.books, st.students, st.loans, strings.NewReader(input), st.out)
	return st
}
