package model

import (
	"strings"

	"golang.org/x/text/cases"
)

// Status is the workflow state of an application.
//
// The bot stores human-readable Russian labels. The four values it writes
// are declared below, but any other stored text is preserved as-is so that
// reports never hide rows with an unexpected state.
type Status string

const (
	// StatusNew is the default state of a freshly submitted application.
	StatusNew Status = "Новая"

	// StatusInProgress means an operator has taken the application.
	StatusInProgress Status = "В работе"

	// StatusDone means the connection was completed.
	StatusDone Status = "Выполнена"

	// StatusCancelled means the application was withdrawn or rejected.
	StatusCancelled Status = "Отменена"
)

// KnownStatuses lists the statuses written by the bot in workflow order.
var KnownStatuses = []Status{
	StatusNew,
	StatusInProgress,
	StatusDone,
	StatusCancelled,
}

// statusAliases maps ASCII aliases accepted on the command line.
var statusAliases = map[string]Status{
	"new":         StatusNew,
	"in_progress": StatusInProgress,
	"done":        StatusDone,
	"cancelled":   StatusCancelled,
}

// fold returns the case-folded form of s.
// A Caser keeps state, so a new one is created for every call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ParseStatus resolves user input to a Status.
// Stored labels and aliases are matched case-insensitively; any other
// input is returned trimmed but otherwise unchanged.
func ParseStatus(s string) Status {
	folded := fold(s)
	if folded == "" {
		return ""
	}
	if st, ok := statusAliases[folded]; ok {
		return st
	}
	for _, st := range KnownStatuses {
		if fold(string(st)) == folded {
			return st
		}
	}
	return Status(strings.TrimSpace(s))
}

// String returns the stored label.
func (s Status) String() string {
	return string(s)
}

// Known reports whether s is one of the statuses written by the bot.
func (s Status) Known() bool {
	for _, st := range KnownStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Alias returns the ASCII alias of s, or "unknown".
func (s Status) Alias() string {
	for alias, st := range statusAliases {
		if s == st {
			return alias
		}
	}
	return "unknown"
}

// Matches reports whether s and other are equal ignoring case.
func (s Status) Matches(other Status) bool {
	return fold(string(s)) == fold(string(other))
}

// FilterByStatus returns the applications whose status matches status,
// keeping their order. An empty status keeps every application.
func FilterByStatus(apps []Application, status Status) []Application {
	if status == "" {
		return apps
	}
	filtered := make([]Application, 0, len(apps))
	for _, app := range apps {
		if app.Status.Matches(status) {
			filtered = append(filtered, app)
		}
	}
	return filtered
}
