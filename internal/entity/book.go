package entity

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Book struct {
	ID     int
	Title  string
	Author string
	Genre  string
	Year   int
	Copies int
}

func (b Book) Validate() error {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required.Error("title must not be blank")),
		validation.Field(&b.Copies, validation.Min(0).Error("copies must not be negative")),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}

// SameTitle reports whether the book's title matches title ignoring case.
func (b Book) SameTitle(title string) bool {
	return strings.EqualFold(b.Title, title)
}

type SearchField int

const (
	SearchByTitle SearchField = iota
	SearchByAuthor
	SearchByGenre
	SearchByYear
)

func (f SearchField) String() string {
	switch f {
	case SearchByTitle:
		return "title"
	case SearchByAuthor:
		return "author"
	case SearchByGenre:
		return "genre"
	case SearchByYear:
		return "year"
	default:
		return "undefined"
	}
}

func ParseSearchField(s string) (SearchField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return SearchByTitle, nil
	case "author":
		return SearchByAuthor, nil
	case "genre":
		return SearchByGenre, nil
	case "year":
		return SearchByYear, nil
	}
	return 0, fmt.Errorf("%w: unknown search field %q", ErrValidation, s)
}

// Matches compares the field of b selected by f with value. Text fields are
// compared ignoring case, years by integer equality.
func (f SearchField) Matches(b Book, value string) bool {
	switch f {
	case SearchByTitle:
		return strings.EqualFold(b.Title, value)
	case SearchByAuthor:
		return strings.EqualFold(b.Author, value)
	case SearchByGenre:
		return strings.EqualFold(b.Genre, value)
	case SearchByYear:
		year, err := strconv.Atoi(strings.TrimSpace(value))
		return err == nil && b.Year == year
	default:
		return false
	}
}
