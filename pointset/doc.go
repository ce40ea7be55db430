// Package pointset defines the core containers shared by every ptset
// algorithm: PointSet, an immutable-by-convention N×d coordinate table,
// and Dense, a row-major float64 result matrix.
//
// Contracts:
//   - A PointSet is rectangular: every point has the same dimensionality
//     d ≥ 1, validated once at construction. Algorithms downstream may
//     therefore assume shape without re-checking each row.
//   - Indexing is the only identity a point has. All toolkit results
//     (matches, orderings, containment filters) refer back to input
//     points by their row index.
//   - Toolkit functions never mutate a PointSet they receive. RowView
//     exposes backing storage for hot loops and must be treated as
//     read-only by callers.
//
// Complexity: constructors are O(N·d); all accessors are O(1) except
// Row and Clone, which copy.
package pointset
