package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const helpText = `usage: http [flags] URL

OUTPUT PROCESSING
  --pretty {all,colors,format,none}
      Controls output processing.

NETWORK
  -x, --offline
      Build the request and print it but don't send it.
`

// run executes the root command with args and stdin, returning stdout and
// stderr. Flag variables are reset first since cobra binds them globally.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	flagInput = "-"
	flagFormat = "ndjson"
	flagIncludeSections = ""
	flagExcludeSections = ""
	flagVerbose = false
	flagTimeout = 10000

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_StdinToNDJSON(t *testing.T) {
	out, _, err := run(t, helpText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if rec["flag"] != "-x," || rec["slug"] != "offline" || rec["section"] != "NETWORK" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestRoot_EmptyInput(t *testing.T) {
	out, stderr, err := run(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestRoot_InputFileAndYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "help.txt")
	if err := os.WriteFile(path, []byte(helpText), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "", "--input", path, "--format", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "slug: pretty") || !strings.Contains(out, "slug: offline") {
		t.Errorf("yaml output missing records:\n%s", out)
	}
}

func TestRoot_MissingInputFile(t *testing.T) {
	_, _, err := run(t, "", "--input", filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if !strings.Contains(err.Error(), "opening input") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRoot_SectionFilters(t *testing.T) {
	out, _, err := run(t, helpText, "--exclude-sections", "network")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "offline") || !strings.Contains(out, "pretty") {
		t.Errorf("exclude filter not applied:\n%s", out)
	}

	_, _, err = run(t, helpText, "--include-sections", "NETWORKS")
	if err == nil || !strings.Contains(err.Error(), "Did you mean 'NETWORK'?") {
		t.Errorf("expected suggestion error, got %v", err)
	}
}

func TestRoot_FlagValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "include and exclude together",
			args:    []string{"--include-sections", "A", "--exclude-sections", "B"},
			wantErr: "cannot be used together",
		},
		{
			name:    "unknown format",
			args:    []string{"--format", "xml"},
			wantErr: "unknown format",
		},
		{
			name:    "positional args rejected",
			args:    []string{"extra"},
			wantErr: "unknown command",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, helpText, tc.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	out, stderr, err := run(t, helpText, "--verbose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "extracted features") {
		t.Errorf("stderr missing debug log:\n%s", stderr)
	}
	if strings.Contains(out, "extracted features") {
		t.Errorf("logs leaked into stdout:\n%s", out)
	}
}

func TestSections(t *testing.T) {
	out, _, err := run(t, helpText, "sections")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "OUTPUT PROCESSING\nNETWORK\n" {
		t.Errorf("sections output = %q", out)
	}
}

func TestRoot_IncludeHeaderListedBySections(t *testing.T) {
	input := "POSITIONAL ARGUMENTS\n  URL\n      the url\nOPTIONS\n  --verbose  be loud\n"

	listed, _, err := run(t, input, "sections")
	if err != nil {
		t.Fatalf("sections: %v", err)
	}
	if listed != "POSITIONAL ARGUMENTS\nOPTIONS\n" {
		t.Fatalf("sections output = %q", listed)
	}

	for _, name := range strings.Split(strings.TrimSpace(listed), "\n") {
		t.Run(name, func(t *testing.T) {
			if _, _, err := run(t, input, "--include-sections", name); err != nil {
				t.Errorf("--include-sections %q rejected a listed header: %v", name, err)
			}
		})
	}

	out, _, err := run(t, input, "--include-sections", "POSITIONAL ARGUMENTS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("header without flags should select nothing, got %q", out)
	}
}
