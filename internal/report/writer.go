package report

import (
	"io"
	"strings"

	"github.com/nao1215/appreport/internal/model"
)

// Writer defines the interface for report output.
// Each method returns the number of bytes written and any error encountered.
type Writer interface {
	// Write outputs the application list report.
	Write(report *model.ApplicationReport) (int, error)

	// WriteSummary outputs application counts per status.
	WriteSummary(summary *model.StatusSummary) (int, error)

	// WriteDetail outputs every field of a single application.
	WriteDetail(app *model.Application) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// orDash returns s, or "-" when s is empty.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// escapeCell makes s safe to place inside a Markdown table cell.
func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}

// cellReplacer escapes pipes and flattens line breaks.
var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")
