// Package series holds 1D array helpers used around the point-set
// toolkit: windowed running means, local-peak finding, top-n selection,
// run splitting, sort-many-by-one and binned column statistics.
//
// Everything here is deterministic and allocation-isolated: inputs are
// never modified and identical inputs produce bit-identical outputs.
// Tie rules are fixed (lowest index wins) so downstream analyses stay
// reproducible.
package series
