package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/appreport/internal/model"
)

// SimpleWriter outputs plain-text reports for terminal display.
// The list report format is line oriented so it can be piped to grep or wc.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as a count line followed by one line per
// application:
//
//	Found 2 applications
//	ID=8, Name=Ivan Petrov, Status=Новая
//	ID=7, Name=Jane Doe, Status=approved
func (w *SimpleWriter) Write(report *model.ApplicationReport) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Found %d applications\n", report.Count)
	for _, app := range report.Applications {
		fmt.Fprintf(&sb, "ID=%d, Name=%s, Status=%s\n", app.ID, orDash(app.Name), orDash(app.Status.String()))
	}

	return io.WriteString(w.output, sb.String())
}

// WriteSummary outputs one line per status with its count.
func (w *SimpleWriter) WriteSummary(summary *model.StatusSummary) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Applications by status (%d total)\n", summary.Total)

	width := 0
	for _, sc := range summary.Statuses {
		if n := len([]rune(sc.Status.String())); n > width {
			width = n
		}
	}

	for _, sc := range summary.Statuses {
		label := sc.Status.String() + ":"
		pad := width + 1 - len([]rune(label))
		fmt.Fprintf(&sb, "  %s%s %d\n", label, strings.Repeat(" ", pad), sc.Count)
	}

	return io.WriteString(w.output, sb.String())
}

// WriteDetail outputs every field of the application on its own line.
func (w *SimpleWriter) WriteDetail(app *model.Application) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "ID:       %d\n", app.ID)
	fmt.Fprintf(&sb, "User ID:  %d\n", app.UserID)
	fmt.Fprintf(&sb, "Tariff:   %s\n", orDash(app.Tariff))
	fmt.Fprintf(&sb, "Name:     %s\n", orDash(app.Name))
	fmt.Fprintf(&sb, "Price:    %s\n", app.PriceString())
	fmt.Fprintf(&sb, "Phone:    %s\n", orDash(app.Phone))
	fmt.Fprintf(&sb, "Email:    %s\n", orDash(app.Email))
	fmt.Fprintf(&sb, "Address:  %s\n", orDash(app.Address))
	fmt.Fprintf(&sb, "Created:  %s\n", app.CreatedAtString())
	fmt.Fprintf(&sb, "Status:   %s\n", orDash(app.Status.String()))

	return io.WriteString(w.output, sb.String())
}
