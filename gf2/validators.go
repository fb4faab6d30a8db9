// SPDX-License-Identifier: MIT
// Package gf2: central validation checks.
// Validators return plain sentinels; call sites wrap them with an op tag.

package gf2

// validateButtons ensures every light index referenced by buttons lies in
// [0, nLights).
// Complexity: O(total indices).
func validateButtons(nLights int, buttons [][]int) error {
	for _, lights := range buttons {
		for _, l := range lights {
			if l < 0 || l >= nLights {
				return ErrLightOutOfRange
			}
		}
	}

	return nil
}

// validateNarrow ensures the button count fits a uint64 row.
func validateNarrow(nButtons int) error {
	if nButtons < 0 || nButtons > NarrowWidth {
		return ErrCapacity
	}

	return nil
}

// validateEquations checks nButtons against the narrow width and rejects
// masks carrying bits at or above nButtons.
func validateEquations(eqs []Equation, nButtons int) error {
	if err := validateNarrow(nButtons); err != nil {
		return err
	}
	if nButtons == NarrowWidth {
		return nil
	}
	limit := uint64(1)<<uint(nButtons) - 1
	for _, eq := range eqs {
		if eq.Mask&^limit != 0 {
			return ErrDimensionMismatch
		}
	}

	return nil
}
