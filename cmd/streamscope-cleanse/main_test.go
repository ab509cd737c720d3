package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.csv")
	out := filepath.Join(dir, "cleaned.csv")

	raw := "title,type,release_year,date_added,rating,country,director,cast,listed_in,duration\n" +
		"Alpha,Movie,2020,\"September 25, 2021\",PG,USA,Someone,Actor A,Dramas,90 min\n" +
		"Alpha,Movie,2020,\"September 25, 2021\",PG,USA,Someone,Actor A,Dramas,90 min\n" +
		",Movie,2020,\"September 25, 2021\",PG,USA,Someone,Actor A,Dramas,90 min\n"
	if err := os.WriteFile(in, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{"-in", in, "-out", out, "-quiet"}); code != 0 {
		t.Fatalf("run exited %d, want 0", code)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output has %d lines, want header + 1 row:\n%s", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], ",year_added") {
		t.Errorf("header %q does not end with year_added", lines[0])
	}
	if !strings.Contains(lines[1], "2021-09-25") || !strings.HasSuffix(lines[1], ",2021") {
		t.Errorf("row %q missing canonical date or derived year", lines[1])
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{"-in", filepath.Join(dir, "nope.csv"), "-out", filepath.Join(dir, "out.csv"), "-quiet"})
	if code != 1 {
		t.Fatalf("run exited %d, want 1", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.csv")); !os.IsNotExist(err) {
		t.Error("output file exists after failed run")
	}
}

func TestRunUsageError(t *testing.T) {
	if code := run([]string{"-in", "only.csv"}); code != 2 {
		t.Fatalf("run exited %d, want 2", code)
	}
}
