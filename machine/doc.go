// Package machine is the thin glue around gf2: it parses panel records from
// text, feeds them to the solver and aggregates the per-record minima.
//
// Records are newline-delimited:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// Use Parse for a single line, Read or ForEach for a stream, and Total to
// parse, solve and sum in one pass. Unsolvable records are handled by an
// explicit Policy rather than summed as a sentinel.
package machine
