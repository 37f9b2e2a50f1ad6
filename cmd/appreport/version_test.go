package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestVersionCmd tests the version command output.
func TestVersionCmd(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	cmd := NewVersionCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"appreport version ", "commit:", "built:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

// TestBuildInfoFallbacks tests that the getters never return empty strings.
func TestBuildInfoFallbacks(t *testing.T) {
	t.Parallel()

	if getVersion() == "" {
		t.Error("expected non-empty version")
	}
	if getCommit() == "" {
		t.Error("expected non-empty commit")
	}
	if len(getCommit()) > 7 && commit == "" {
		t.Errorf("expected short commit hash, got %q", getCommit())
	}
	if getDate() == "" {
		t.Error("expected non-empty date")
	}
}
