// Package polygon answers containment questions about simple 2D
// polygons and point sets.
//
// A polygon is a *pointset.PointSet with dimensionality 2 and at least
// three vertices, listed in boundary order (either winding); the edge
// from the last vertex back to the first is implied. Containment uses
// the even-odd ray-casting rule, so self-intersecting boundaries are
// handled the even-odd way and points exactly on an edge follow the
// crossing rule rather than being guaranteed inside or outside. The
// rule is deterministic, which is what the downstream masking workflow
// needs.
//
// Entry points: Contains (single point), Indices / Filter /
// FilterOutside (point sets against one polygon), Enclosing (one point
// against many polygons) and Area (shoelace).
package polygon
