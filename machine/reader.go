// SPDX-License-Identifier: MIT

package machine

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single record line.
const maxLineBytes = 1 << 20

// ForEach parses newline-delimited records from r and calls fn for each,
// with the record's 1-based line number. Blank lines are skipped. The first
// parse error, read error or fn error stops the scan; parse errors carry
// the line number.
func ForEach(r io.Reader, fn func(line int, m Machine) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		m, err := Parse(text)
		if err != nil {
			return lineErrorf(line, err)
		}
		if err = fn(line, m); err != nil {
			return err
		}
	}

	return sc.Err()
}

// Read parses every record from r.
func Read(r io.Reader) ([]Machine, error) {
	var out []Machine
	err := ForEach(r, func(_ int, m Machine) error {
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
