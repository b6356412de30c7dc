package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/project/studentlibrary/pkg/logger"
	"go.uber.org/zap"
)

const (
	menu = `Welcome to the Library Management System
1. Total amount of books in the library
2. Add Book
3. View Books
4. Search Books
5. Delete Book by Title
6. Register Student
7. List Students
8. Borrow Book
9. Return Book
10. Delete Student by ID
Type 'clear' to clear the screen.`

	choicePrompt = "Enter your choice (1-10) or 'q' to quit: "
	clearScreen  = "\033[H\033[2J"
)

var errNoInput = errors.New("end of input")

// Serve runs the menu loop until the operator quits, the input ends or ctx
// is cancelled.
func (i *implementation) Serve(ctx context.Context) error {
	actions := map[string]func(ctx context.Context){
		"1":  i.TotalBooks,
		"2":  i.AddBook,
		"3":  i.ViewBooks,
		"4":  i.SearchBooks,
		"5":  i.DeleteBook,
		"6":  i.RegisterStudent,
		"7":  i.ListStudents,
		"8":  i.BorrowBook,
		"9":  i.ReturnBook,
		"10": i.DeleteStudent,
	}

	i.println(menu)
	for ctx.Err() == nil {
		choice, ok := i.prompt(choicePrompt)
		if !ok {
			break
		}

		choice = strings.ToLower(choice)
		if choice == "q" {
			break
		}
		if choice == "clear" {
			fmt.Fprint(i.out, clearScreen)
			i.println(menu)
			continue
		}

		action, found := actions[choice]
		if !found {
			i.println("Invalid choice. Please try again.")
			continue
		}
		action(ctx)
	}

	i.println("Exiting the Library Management System.")

	err := i.in.Err()
	logger.CheckError(err, i.logger, "failed read of console input", zap.Error(err))
	return err
}

// prompt writes msg and reads one trimmed line. It reports false at the end
// of input.
func (i *implementation) prompt(msg string) (string, bool) {
	fmt.Fprint(i.out, msg)
	if !i.in.Scan() {
		fmt.Fprintln(i.out)
		return "", false
	}
	return strings.TrimSpace(i.in.Text()), true
}

func (i *implementation) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}

func (i *implementation) printf(format string, a ...any) {
	fmt.Fprintf(i.out, format, a...)
}
