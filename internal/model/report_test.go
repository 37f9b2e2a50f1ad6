package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// TestNewApplicationReport tests report construction.
func TestNewApplicationReport(t *testing.T) {
	t.Parallel()

	t.Run("nil applications", func(t *testing.T) {
		t.Parallel()
		r := NewApplicationReport(nil)
		if r.Count != 0 {
			t.Errorf("expected count 0, got %d", r.Count)
		}
		if r.Applications == nil {
			t.Error("expected non-nil applications slice")
		}
	})

	t.Run("counts applications", func(t *testing.T) {
		t.Parallel()
		r := NewApplicationReport([]Application{{ID: 2}, {ID: 1}})
		if r.Count != 2 {
			t.Errorf("expected count 2, got %d", r.Count)
		}
	})
}

// TestNewStatusSummary tests summary ordering and totals.
func TestNewStatusSummary(t *testing.T) {
	t.Parallel()

	t.Run("empty counts keep known statuses", func(t *testing.T) {
		t.Parallel()
		s := NewStatusSummary(nil)
		if s.Total != 0 {
			t.Errorf("expected total 0, got %d", s.Total)
		}
		if len(s.Statuses) != len(KnownStatuses) {
			t.Fatalf("expected %d statuses, got %d", len(KnownStatuses), len(s.Statuses))
		}
		if s.HasApplications() {
			t.Error("expected HasApplications to be false")
		}
	})

	t.Run("known first then unknown alphabetically", func(t *testing.T) {
		t.Parallel()
		s := NewStatusSummary(map[Status]int{
			StatusDone:      2,
			Status("zeta"):  1,
			StatusNew:       3,
			Status("alpha"): 4,
			StatusCancelled: 1,
		})

		want := []StatusCount{
			{Status: StatusNew, Count: 3},
			{Status: StatusInProgress, Count: 0},
			{Status: StatusDone, Count: 2},
			{Status: StatusCancelled, Count: 1},
			{Status: Status("alpha"), Count: 4},
			{Status: Status("zeta"), Count: 1},
		}
		if len(s.Statuses) != len(want) {
			t.Fatalf("expected %d statuses, got %d", len(want), len(s.Statuses))
		}
		for i, w := range want {
			if s.Statuses[i] != w {
				t.Errorf("statuses[%d] = %+v, want %+v", i, s.Statuses[i], w)
			}
		}
		if s.Total != 11 {
			t.Errorf("expected total 11, got %d", s.Total)
		}
	})
}

// TestApplicationDisplayHelpers tests the display formatting helpers.
func TestApplicationDisplayHelpers(t *testing.T) {
	t.Parallel()

	app := Application{}
	if got := app.PriceString(); got != "-" {
		t.Errorf("expected '-' for unknown price, got %q", got)
	}
	if got := app.CreatedAtString(); got != "-" {
		t.Errorf("expected '-' for unknown timestamp, got %q", got)
	}

	app.Price = decimal.NewNullDecimal(decimal.RequireFromString("750.50"))
	app.CreatedAt = time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	if got := app.PriceString(); got != "750.5" {
		t.Errorf("expected '750.5', got %q", got)
	}
	if got := app.CreatedAtString(); got != "2025-03-01 12:30:00" {
		t.Errorf("expected '2025-03-01 12:30:00', got %q", got)
	}
}
