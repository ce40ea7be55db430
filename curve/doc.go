// Package curve reorders an unordered point cloud, presumed to lie
// along a curve, into a connected path.
//
// Order runs a greedy nearest-neighbor walk as an explicit two-set
// state machine: every index starts in the Remaining set except the
// caller's seed, which opens the Ordered path. Each step moves the
// Remaining point nearest to the current path tail into Ordered, ties
// breaking toward the lowest original index, until Remaining drains.
// Bookkeeping is index-based over a fixed arena; the input point set is
// never touched.
//
// The walk is a heuristic, not a shortest-Hamiltonian-path solver: it
// can jump past a nearer point that was already consumed and end up
// locally suboptimal. That behavior is accepted and preserved so that
// reorderings stay reproducible across versions.
//
// A projected (directional) ordering strategy is reserved in the
// Method enum but not implemented; requesting it fails with
// ErrUnsupportedMethod.
//
// Complexity: O(N²·d) time, O(N) extra memory beyond the output.
package curve
