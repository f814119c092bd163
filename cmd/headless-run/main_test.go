package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_SolvesSoloCorridor(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "corridor.txt")
	// 5x3: Wall border, Free corridor row, EntryPoint at (0,1).
	content := "1 1 1 1 1\n2 0 0 0 0\n1 1 1 1 1\n"
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "out.txt")
	out, err := os.Create(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	code := run([]string{"--map", mapPath, "--agents", "1", "--max-ticks", "20"}, out)
	if code != 0 {
		t.Fatalf("expected exit code 0 for a solvable corridor, got %d", code)
	}

	out.Seek(0, 0)
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "progress=100.0%") {
		t.Fatalf("expected a report line showing full progress, got:\n%s", string(data))
	}
}

func TestRun_RejectsMissingEntryPoints(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "noentry.txt")
	if err := os.WriteFile(mapPath, []byte("0 0\n0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := os.CreateTemp(dir, "out")
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	code := run([]string{"--map", mapPath}, out)
	if code == 0 {
		t.Fatalf("expected a non-zero exit code for a map with no entry points")
	}
}
