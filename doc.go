// Package ptset is an in-memory toolkit for analyzing point clouds that
// come out of particle-simulation and image-analysis pipelines — from
// distance matrices to neighbor matching and curve reconstruction.
//
// 🚀 What is ptset?
//
//	A small, deterministic library that brings together:
//		• Distance matrices: pairwise Euclidean, per-axis displacement,
//		  periodic minimum-image, projected-onto-vector
//		• Neighbor matching: nearest-point and nearest-value assignment,
//		  radius and k-nearest queries, interparticle separation
//		• Curve ordering: greedy nearest-neighbor path reconstruction
//		  from an unordered point cloud
//		• Geometry: point-in-polygon containment and shoelace area
//		• Series helpers: running means, peak finding, binned statistics
//
// ✨ Why choose ptset?
//
//   - Deterministic by construction – no randomness, no map-order effects;
//     identical inputs always produce bit-identical outputs
//   - Explicit contracts – every operation validates dimensionality up
//     front and returns sentinel errors, never panics
//   - Pure Go – no cgo, no hidden deps
//   - Caller-owned data – inputs are never mutated; every result is a
//     fresh allocation
//
// Everything is organized under six subpackages:
//
//	pointset/ — fixed-dimension point containers & dense result matrices
//	dist/     — pairwise, periodic and projected distance matrices
//	neighbor/ — nearest-point/value matching, radius & k-NN queries
//	curve/    — greedy nearest-neighbor curve ordering
//	polygon/  — containment tests, filtering, shoelace area
//	series/   — 1D running means, peaks, binning, sorting helpers
//
// Quick ASCII example:
//
//	  ·  ·      an unordered cloud of points sampled
//	·      ·    along a curve is reordered into a
//	  ·  ·      connected path by curve.Order.
//
// Dive into the package docs for contracts, complexity notes and the
// edge-case policy (periodic tie-breaking, self-exclusion, empty inputs).
package ptset
