package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/appreport/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the application report as a Markdown table.
func (w *MarkdownWriter) Write(report *model.ApplicationReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Applications")
	md.PlainText("")
	md.PlainTextf("Found %d applications", report.Count)
	md.PlainText("")

	if report.Count == 0 {
		md.Note("The applications table is empty.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(report.Applications))
	for i, app := range report.Applications {
		rows[i] = []string{
			strconv.FormatInt(app.ID, 10),
			escapeCell(app.Name),
			escapeCell(app.Status.String()),
			escapeCell(app.Tariff),
			app.PriceString(),
			app.CreatedAtString(),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"ID", "Name", "Status", "Tariff", "Price", "Created"},
		Rows:   rows,
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}

// WriteSummary outputs the status summary as a table with a pie chart.
func (w *MarkdownWriter) WriteSummary(summary *model.StatusSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Applications by Status")
	md.PlainText("")

	rows := make([][]string, 0, len(summary.Statuses)+1)
	for _, sc := range summary.Statuses {
		rows = append(rows, []string{escapeCell(sc.Status.String()), strconv.Itoa(sc.Count)})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(summary.Total) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Status", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if summary.HasApplications() {
		w.writePieChart(md, summary)
	}

	return len(md.String()), md.Build()
}

// writePieChart writes a mermaid pie chart of non-zero status counts.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.StatusSummary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Application Status Distribution"),
		piechart.WithShowData(true),
	)

	for _, sc := range summary.Statuses {
		if sc.Count > 0 {
			chart.LabelAndIntValue(pieLabel(sc.Status.String()), uint64(sc.Count))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// pieLabelReplacer keeps a label inside the double quotes mermaid wraps it in.
var pieLabelReplacer = strings.NewReplacer(`"`, "'", "\r\n", " ", "\n", " ")

// pieLabel makes a status usable as a mermaid pie chart label.
func pieLabel(s string) string {
	return orDash(pieLabelReplacer.Replace(s))
}

// WriteDetail outputs every field of the application as a property table.
func (w *MarkdownWriter) WriteDetail(app *model.Application) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Application " + strconv.FormatInt(app.ID, 10))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", strconv.FormatInt(app.ID, 10)},
			{"User ID", strconv.FormatInt(app.UserID, 10)},
			{"Tariff", escapeCell(orDash(app.Tariff))},
			{"Name", escapeCell(orDash(app.Name))},
			{"Price", app.PriceString()},
			{"Phone", escapeCell(orDash(app.Phone))},
			{"Email", escapeCell(orDash(app.Email))},
			{"Address", escapeCell(orDash(app.Address))},
			{"Created", app.CreatedAtString()},
			{"Status", escapeCell(orDash(app.Status.String()))},
		},
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}
