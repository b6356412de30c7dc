package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")

	ErrBookNotFound        = fmt.Errorf("book %w", ErrNotFound)
	ErrMemberNotFound      = fmt.Errorf("student %w", ErrNotFound)
	ErrMemberNotRegistered = fmt.Errorf("student is not registered: %w", ErrNotFound)
	ErrNoLoans             = fmt.Errorf("no borrowed books: %w", ErrNotFound)
	ErrLoanNotFound        = fmt.Errorf("loan %w", ErrNotFound)

	ErrDuplicateMember = errors.New("student already registered")
	ErrOutOfStock      = errors.New("book is out of stock")

	// ErrPersistence wraps failures to write a document. The in-memory state
	// it refers to has already been changed.
	ErrPersistence = errors.New("can not persist state")
)
