// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package layout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Parse reads a layout, one row per line. Trailing carriage returns and
// trailing blank lines are ignored; a blank line between rows makes the
// grid ragged.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return New(rows)
}

// Load reads a layout file. Files ending in .zst are decompressed on the fly.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd layout %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	g, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return g, nil
}
