package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveScenarioS1(t *testing.T) {
	out, err := runCLI(t, "resolve", "--scenario", "S1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "App.Bar") {
		t.Fatalf("expected the report to mention App.Bar, got:\n%s", out)
	}
	if !strings.Contains(out, "functions (1)") {
		t.Fatalf("expected exactly one function in the report, got:\n%s", out)
	}
}

func TestResolveUnknownScenario(t *testing.T) {
	_, err := runCLI(t, "resolve", "--scenario", "Nope")
	if err == nil {
		t.Fatalf("expected an error for an unknown scenario")
	}
}

func TestResolveRejectsNegativeJobs(t *testing.T) {
	_, err := runCLI(t, "resolve", "--scenario", "S1", "--jobs", "-1")
	if err == nil {
		t.Fatalf("expected an error for a negative jobs count")
	}
}

func TestResolveVerboseListsVariables(t *testing.T) {
	out, err := runCLI(t, "resolve", "--scenario", "S3", "--verbose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "var xs") {
		t.Fatalf("expected verbose output to list the xs variable, got:\n%s", out)
	}
}
