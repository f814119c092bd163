// Package mapfile loads and generates tile matrices for the grid map format
// used by the cmd/headless-run and cmd/viewer drivers. The core sim package
// never touches a filesystem; this package is the external collaborator that
// turns a map file into the [][]int rows sim.NewGrid expects (§6).
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a whitespace-separated integer matrix from path, one row per
// line, and returns it as [][]int suitable for sim.NewGrid. Blank lines are
// skipped; every non-blank row must have the same column count.
func Load(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %s: %w", path, err)
	}
	return rows, nil
}

func parse(r io.Reader) ([][]int, error) {
	var rows [][]int
	width := -1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not an integer", lineNo, f)
			}
			row[i] = v
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", lineNo, width, len(row))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty map")
	}
	return rows, nil
}

// Save writes rows back out in the same whitespace-separated format Load
// reads, one row per line.
func Save(path string, rows [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapfile: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		strs := make([]string, len(row))
		for i, v := range row {
			strs[i] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(strs, " ")); err != nil {
			return err
		}
	}
	return w.Flush()
}
