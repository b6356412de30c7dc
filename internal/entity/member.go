package entity

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Member struct {
	ID   string
	Name string
}

func (m Member) Validate() error {
	err := validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.Required.Error("student id must not be blank")),
		validation.Field(&m.Name, validation.Required.Error("student name must not be blank")),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}
