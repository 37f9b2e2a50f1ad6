package model

import "testing"

// TestParseStatus tests resolving user input to a Status.
func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Status
	}{
		{name: "stored label", input: "Новая", want: StatusNew},
		{name: "stored label lower case", input: "новая", want: StatusNew},
		{name: "stored label upper case", input: "В РАБОТЕ", want: StatusInProgress},
		{name: "alias", input: "done", want: StatusDone},
		{name: "alias mixed case", input: "Cancelled", want: StatusCancelled},
		{name: "surrounding spaces", input: "  in_progress ", want: StatusInProgress},
		{name: "unknown value is preserved", input: " approved ", want: Status("approved")},
		{name: "empty", input: "", want: ""},
		{name: "blank", input: "   ", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseStatus(tt.input); got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestStatusKnown tests detection of statuses written by the bot.
func TestStatusKnown(t *testing.T) {
	t.Parallel()

	for _, st := range KnownStatuses {
		if !st.Known() {
			t.Errorf("expected %q to be known", st)
		}
	}
	if Status("approved").Known() {
		t.Error("expected 'approved' to be unknown")
	}
}

// TestStatusAlias tests the ASCII aliases.
func TestStatusAlias(t *testing.T) {
	t.Parallel()

	tests := map[Status]string{
		StatusNew:          "new",
		StatusInProgress:   "in_progress",
		StatusDone:         "done",
		StatusCancelled:    "cancelled",
		Status("approved"): "unknown",
	}

	for st, want := range tests {
		if got := st.Alias(); got != want {
			t.Errorf("%q.Alias() = %q, want %q", st, got, want)
		}
	}
}

// TestFilterByStatus tests status filtering of applications.
func TestFilterByStatus(t *testing.T) {
	t.Parallel()

	apps := []Application{
		{ID: 4, Status: StatusDone},
		{ID: 3, Status: StatusNew},
		{ID: 2, Status: Status("approved")},
		{ID: 1, Status: StatusNew},
	}

	t.Run("empty status keeps all", func(t *testing.T) {
		t.Parallel()
		got := FilterByStatus(apps, "")
		if len(got) != len(apps) {
			t.Errorf("expected %d applications, got %d", len(apps), len(got))
		}
	})

	t.Run("keeps matching applications in order", func(t *testing.T) {
		t.Parallel()
		got := FilterByStatus(apps, StatusNew)
		if len(got) != 2 {
			t.Fatalf("expected 2 applications, got %d", len(got))
		}
		if got[0].ID != 3 || got[1].ID != 1 {
			t.Errorf("unexpected order: %d, %d", got[0].ID, got[1].ID)
		}
	})

	t.Run("matches unknown status ignoring case", func(t *testing.T) {
		t.Parallel()
		got := FilterByStatus(apps, Status("APPROVED"))
		if len(got) != 1 || got[0].ID != 2 {
			t.Errorf("expected application 2, got %+v", got)
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		t.Parallel()
		got := FilterByStatus(apps, StatusCancelled)
		if len(got) != 0 {
			t.Errorf("expected no applications, got %d", len(got))
		}
	})
}
