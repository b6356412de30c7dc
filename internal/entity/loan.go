package entity

import (
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	LoanPeriodDays = 14
)

// Loan is an outstanding checkout. Title refers to a catalog record by text
// only, so it survives catalog edits and may point at nothing.
type Loan struct {
	ID       string
	Title    string
	Borrowed string
	Due      string
}

func NewLoan(id, title string, borrowed time.Time) Loan {
	day := Date(borrowed)
	return Loan{
		ID:       id,
		Title:    title,
		Borrowed: day.Format(DateLayout),
		Due:      day.AddDate(0, 0, LoanPeriodDays).Format(DateLayout),
	}
}

func (l Loan) SameTitle(title string) bool {
	return strings.EqualFold(l.Title, title)
}

func (l Loan) DueDate() (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(l.Due))
}

// DaysLate is the number of whole calendar days between the due date and
// today, or zero when today is not after the due date.
func (l Loan) DaysLate(today time.Time) (int, error) {
	due, err := l.DueDate()
	if err != nil {
		return 0, err
	}
	day := Date(today)
	if !day.After(due) {
		return 0, nil
	}
	return int(day.Sub(due).Hours() / 24), nil
}

// Date drops the time of day and the location of t, keeping its calendar date.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type ReturnReceipt struct {
	Loan          Loan
	DaysLate      int
	DueUnreadable bool
	BookMissing   bool
}

func (r ReturnReceipt) Late() bool {
	return r.DaysLate > 0
}
