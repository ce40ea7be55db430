// Package neighbor assigns points to their nearest counterparts.
//
// Entry points:
//
//   - MatchPoints  — for every query point, the index of its nearest
//     point in a reference set (squared-distance argmin, so no sqrt).
//   - MatchValues  — the 1D analogue over plain scalar slices.
//   - ClosestPoint — a single query point against a set.
//   - NearestWithin — per point, every other point strictly inside a
//     cutoff radius.
//   - NearestK     — per point, its k nearest other points, ascending
//     by distance.
//   - Separation   — per point, the mean distance to its k nearest
//     neighbors or to all neighbors within a cutoff.
//
// Determinism: all ties break toward the lowest index, and results are
// bit-identical across repeated calls.
//
// Self-exclusion policy: NearestWithin, NearestK and Separation exclude
// a point from its own neighborhood by distance (d > 0, respectively
// d > eps), not by index. A distinct point that coincides exactly with
// the query point is therefore also excluded. That is a documented
// limitation inherited from the workflow this package supports, kept
// deliberately so results stay comparable across toolchains.
//
// Complexity: every query builds a dense pairwise matrix first, so all
// operations are O(N·M·d) time and O(N·M) memory (O(N²·d) for the
// self-set queries).
package neighbor
