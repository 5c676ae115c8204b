package service

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"tracker/internal/model"
)

const (
	reportHeader    = "======== STUDENT PROGRESS REPORT ========"
	reportSeparator = "-----------------------------------"
	displayHeader   = "========== STUDENT REPORT =========="
	displayFooter   = "==================================="
)

// FormatNumber renders a score the way a default C++ ostream would:
// six significant digits and no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatStudent renders one student for on-screen display.
func FormatStudent(student model.Student) string {
	var sb strings.Builder
	sb.WriteString(displayHeader + "\n")
	writeStudentFields(&sb, student)
	sb.WriteString(displayFooter + "\n")
	return sb.String()
}

// WriteReport writes the progress report for all students, in the order given.
func WriteReport(w io.Writer, students []model.Student) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(reportHeader + "\n\n")
	for _, student := range students {
		writeStudentFields(bw, student)
		bw.WriteString(reportSeparator + "\n\n")
	}
	return bw.Flush()
}

func writeStudentFields(w io.StringWriter, student model.Student) {
	w.WriteString(fmt.Sprintf("Name: %s\n", student.Name()))
	w.WriteString(fmt.Sprintf("Roll No.: %d\n", student.RollNumber()))
	w.WriteString("Marks:\n")
	for _, subject := range model.Subjects() {
		w.WriteString(fmt.Sprintf("  %s: %s\n", subject, FormatNumber(student.Mark(subject))))
	}
	w.WriteString(fmt.Sprintf("Total Marks: %s/%s\n", FormatNumber(student.Total()), FormatNumber(model.MaxTotal)))
	w.WriteString(fmt.Sprintf("Percentage: %s%%\n", FormatNumber(student.Percentage())))
	w.WriteString(fmt.Sprintf("Grade: %s\n", student.Grade()))
}
