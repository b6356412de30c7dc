package controller

import (
	"errors"
	"fmt"

	"github.com/project/studentlibrary/internal/entity"
)

// convertErr turns a use case error into the line shown to the operator.
func (i *implementation) convertErr(err error) string {
	switch {
	case errors.Is(err, entity.ErrMemberNotRegistered):
		return "You are not registered. Please register first before borrowing books."
	case errors.Is(err, entity.ErrNoLoans):
		return "You haven't borrowed any books."
	case errors.Is(err, entity.ErrLoanNotFound):
		return "You didn't borrow this book."
	case errors.Is(err, entity.ErrBookNotFound):
		return "Book not found."
	case errors.Is(err, entity.ErrMemberNotFound):
		return "Student not found."
	case errors.Is(err, entity.ErrDuplicateMember):
		return "Student is already registered."
	case errors.Is(err, entity.ErrOutOfStock):
		return "Book is currently out of stock."
	case errors.Is(err, entity.ErrValidation):
		return fmt.Sprintf("Invalid input: %v.", err)
	case errors.Is(err, entity.ErrPersistence):
		return fmt.Sprintf("Saved in memory, but the data file could not be written: %v", err)
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}

// failed reports whether err stopped the operation. A persistence error
// does not: the change is applied in memory and reported afterwards by
// reportSave.
func failed(err error) bool {
	return err != nil && !errors.Is(err, entity.ErrPersistence)
}

func (i *implementation) reportSave(err error) {
	if errors.Is(err, entity.ErrPersistence) {
		i.println(i.convertErr(err))
	}
}
