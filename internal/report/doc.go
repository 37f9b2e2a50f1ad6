// Package report renders application data in several output formats:
//   - SimpleWriter: the plain-text report ("Found N applications" followed by
//     one line per application)
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
//
// Report data structures live in the model package; writers only format them.
package report
