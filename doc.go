// Package lights solves toggle-light panels: given a target on/off pattern
// and a set of buttons that each flip a fixed group of lights, find the
// fewest presses that produce the pattern.
//
// What is in here?
//
//	gf2/         exact solver: equations over GF(2), Gauss–Jordan elimination,
//	             minimum-weight search over the free variables
//	machine/     record parser ("[.##.] (3) (1,3) ... {3,5,4,7}"), reader and
//	             aggregator with an explicit policy for unsolvable records
//	cmd/lights/  command-line entry point
//
// Quick example:
//
//	target  .##.
//	buttons (3) (1,3) (2) (2,3) (0,2) (0,1)
//
// is lit by pressing (1,3) and (2,3): two presses, the minimum.
//
//	go run ./cmd/lights -input day10.txt
package lights
