package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muurk/mandelsaver/internal/version"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "mandelsaver ") {
		t.Errorf("output = %q, want mandelsaver prefix", got)
	}
	if !strings.Contains(got, version.Commit) {
		t.Errorf("output = %q, want commit %q", got, version.Commit)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	rootCmd.SetArgs([]string{"unexpected"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() with a positional argument succeeded, want error")
	}
}
