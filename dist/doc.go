// Package dist computes dense distance and displacement matrices
// between point sets.
//
// Three entry points:
//
//   - Pairwise  — Euclidean distance across all dimensions, or the
//     signed displacement along a single axis.
//   - Periodic  — minimum-image distance in a 2D domain that repeats
//     along two lattice vectors.
//   - AlongVec  — per-pair displacement projected onto a direction.
//
// Conventions shared by all three:
//
//   - Entry (i,j) of the result relates pts[i] to nbrs[j]; the sign of
//     a per-axis displacement is nbrs[j] − pts[i].
//   - Options.Squared skips the final square root (full norms) or
//     squares the displacement (single-axis), for callers that only
//     need relative ordering.
//   - Empty inputs produce a correctly-shaped empty matrix, never an
//     error; mismatched dimensionality fails immediately with
//     pointset.ErrDimensionMismatch.
//   - Results are freshly allocated; inputs are never mutated.
//
// Periodic tie-breaking: among the five wrap candidates per axis
// (raw, −v1, +v1, −v2, +v2) the earliest candidate in that fixed order
// wins an exact tie, so the unshifted displacement is always preferred.
// This rule is load-bearing for reproducibility and must not change.
//
// Complexity: all functions are O(N·M·d) time and O(N·M) memory.
package dist
