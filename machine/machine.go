// SPDX-License-Identifier: MIT
// Package machine: record model and line parser.
//
// A record describes one panel on a single line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
//   - [...]  target pattern, '#' = on, '.' = off;
//   - (...)  one button per group: the zero-based lights it toggles;
//   - {...}  optional joltage requirements, kept but not used by the solver.
//
// Empty groups "()" are skipped and do not take a button index.

package machine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lights/gf2"
)

// Machine is one parsed record.
type Machine struct {
	Lights  []bool  // target pattern
	Buttons [][]int // Buttons[j] lists the lights button j toggles
	Joltage []int   // optional trailing {...} block; nil when absent
}

// Solve runs the GF(2) solver on the machine.
func (m Machine) Solve(opts ...gf2.Option) (gf2.Result, error) {
	return gf2.Solve(m.Lights, m.Buttons, opts...)
}

// MinPresses returns the minimum press count or gf2.NoSolution.
func (m Machine) MinPresses(opts ...gf2.Option) (int, error) {
	return gf2.MinPresses(m.Lights, m.Buttons, opts...)
}

// String renders the machine back into record notation.
func (m Machine) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, on := range m.Lights {
		if on {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte(']')
	for _, btn := range m.Buttons {
		sb.WriteString(" (")
		writeInts(&sb, btn)
		sb.WriteByte(')')
	}
	if m.Joltage != nil {
		sb.WriteString(" {")
		writeInts(&sb, m.Joltage)
		sb.WriteByte('}')
	}

	return sb.String()
}

func writeInts(sb *strings.Builder, xs []int) {
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}
}

// Parse reads one record.
//
// Errors:
//   - ErrMalformed           on missing/unbalanced delimiters, pattern
//     characters other than '#' and '.', stray text or unparsable numbers.
//   - gf2.ErrLightOutOfRange if a button names a light outside the pattern.
func Parse(line string) (Machine, error) {
	open := strings.IndexByte(line, '[')
	if open < 0 {
		return Machine{}, malformedf("missing '['")
	}
	if strings.TrimSpace(line[:open]) != "" {
		return Machine{}, malformedf("text before '['")
	}
	closeAt := strings.IndexByte(line[open:], ']')
	if closeAt < 0 {
		return Machine{}, malformedf("missing ']'")
	}
	closeAt += open

	var m Machine
	m.Lights = make([]bool, 0, closeAt-open-1)
	for _, c := range line[open+1 : closeAt] {
		switch c {
		case '#':
			m.Lights = append(m.Lights, true)
		case '.':
			m.Lights = append(m.Lights, false)
		default:
			return Machine{}, malformedf("pattern character %q", c)
		}
	}

	rest := line[closeAt+1:]
	for {
		rest = strings.TrimLeft(rest, " \t\r")
		if rest == "" {
			break
		}
		switch rest[0] {
		case '(':
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return Machine{}, malformedf("unterminated '('")
			}
			body := rest[1:end]
			if strings.ContainsAny(body, "()[]{}") {
				return Machine{}, malformedf("nested delimiter in %q", rest[:end+1])
			}
			lights, err := parseInts(body)
			if err != nil {
				return Machine{}, err
			}
			for _, l := range lights {
				if l < 0 || l >= len(m.Lights) {
					return Machine{}, fmt.Errorf("%w: button %d names light %d", gf2.ErrLightOutOfRange, len(m.Buttons), l)
				}
			}
			if len(lights) > 0 {
				m.Buttons = append(m.Buttons, lights)
			}
			rest = rest[end+1:]
		case '{':
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return Machine{}, malformedf("unterminated '{'")
			}
			jolts, err := parseInts(rest[1:end])
			if err != nil {
				return Machine{}, err
			}
			if jolts == nil {
				jolts = []int{}
			}
			m.Joltage = jolts
			if tail := strings.TrimSpace(rest[end+1:]); tail != "" {
				return Machine{}, malformedf("text after '}': %q", tail)
			}
			rest = ""
		default:
			return Machine{}, malformedf("unexpected %q", rest[0])
		}
	}

	return m, nil
}

// parseInts parses a comma-separated list; an all-blank body yields nil.
func parseInts(body string) ([]int, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, malformedf("number %q", strings.TrimSpace(p))
		}
		out[i] = n
	}

	return out, nil
}
