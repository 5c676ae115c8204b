package handler

import (
	"errors"
	"io"
)

const (
	choiceAdd = iota + 1
	choiceView
	choiceCompare
	choiceSave
	choiceImport
	choiceExit
)

type MenuHandler struct {
	console        *Console
	studentHandler *StudentHandler
	importHandler  *ImportHandler
}

func NewMenuHandler(console *Console, studentHandler *StudentHandler, importHandler *ImportHandler) *MenuHandler {
	return &MenuHandler{console: console, studentHandler: studentHandler, importHandler: importHandler}
}

// Run shows the main menu until the user exits or input ends. Running out of
// input is treated like choosing Exit.
func (h *MenuHandler) Run() error {
	h.console.Printf("Welcome to Student Progress Tracker\n")

	for {
		h.printMenu()
		choice, err := h.console.ReadInt("Enter your choice: ")
		if err == nil {
			err = h.dispatch(choice)
		}
		if errors.Is(err, io.EOF) {
			h.console.Printf("\n")
			err = errExit
		}
		if errors.Is(err, errExit) {
			h.console.Printf("Thank you for using Student Progress Tracker!\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errExit = errors.New("exit")

func (h *MenuHandler) dispatch(choice int) error {
	switch choice {
	case choiceAdd:
		return h.studentHandler.AddStudents()
	case choiceView:
		return h.studentHandler.ViewReport()
	case choiceCompare:
		return h.studentHandler.CompareStudents()
	case choiceSave:
		return h.studentHandler.SaveReports()
	case choiceImport:
		return h.importHandler.ImportCSV()
	case choiceExit:
		return errExit
	default:
		h.console.Printf("Invalid choice! Please enter a number between %d and %d.\n", choiceAdd, choiceExit)
		return nil
	}
}

func (h *MenuHandler) printMenu() {
	h.console.Printf("\n========== MAIN MENU ==========\n")
	h.console.Printf("%d. Add new Student\n", choiceAdd)
	h.console.Printf("%d. View student report\n", choiceView)
	h.console.Printf("%d. Compare students by percentage\n", choiceCompare)
	h.console.Printf("%d. Save reports to file\n", choiceSave)
	h.console.Printf("%d. Import students from CSV\n", choiceImport)
	h.console.Printf("%d. Exit\n", choiceExit)
}
