package model

import "sort"

// ApplicationReport is the result of a single report run.
type ApplicationReport struct {
	// Count is the number of applications in the report.
	Count int `json:"count"`

	// Applications are ordered by ID, newest first.
	Applications []Application `json:"applications"`
}

// NewApplicationReport builds a report from applications already in
// display order.
func NewApplicationReport(apps []Application) *ApplicationReport {
	if apps == nil {
		apps = []Application{}
	}
	return &ApplicationReport{
		Count:        len(apps),
		Applications: apps,
	}
}

// StatusCount is the number of applications in one status.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}

// StatusSummary counts applications per status.
type StatusSummary struct {
	// Total is the number of applications across all statuses.
	Total int `json:"total"`

	// Statuses lists known statuses first in workflow order, followed by
	// any other stored values in alphabetical order.
	Statuses []StatusCount `json:"statuses"`
}

// NewStatusSummary builds a summary from raw per-status counts.
// Known statuses are always present, with zero counts if needed.
func NewStatusSummary(counts map[Status]int) *StatusSummary {
	summary := &StatusSummary{
		Statuses: make([]StatusCount, 0, len(KnownStatuses)+len(counts)),
	}

	for _, st := range KnownStatuses {
		n := counts[st]
		summary.Statuses = append(summary.Statuses, StatusCount{Status: st, Count: n})
		summary.Total += n
	}

	var unknown []Status
	for st := range counts {
		if !st.Known() {
			unknown = append(unknown, st)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })

	for _, st := range unknown {
		n := counts[st]
		summary.Statuses = append(summary.Statuses, StatusCount{Status: st, Count: n})
		summary.Total += n
	}

	return summary
}

// HasApplications reports whether the summary counts any application.
func (s *StatusSummary) HasApplications() bool {
	return s.Total > 0
}
