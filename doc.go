// Package lvlgrid is a reusable two-dimensional grid container for
// grid-based applications — board games, cellular simulations, tile maps.
//
// 🚀 What is lvlgrid?
//
//	A generic, dependency-light building block that brings together:
//		• Core container: bounds-checked access, change-proportional resize
//		• Change notifications: add/remove callbacks with re-entrancy guard
//		• Value clamping: a write-path transform keeping cells in range
//		• Structural queries: neighbours, sub-grids, traversals, keyed views
//		• Equality & hashing: structural comparison with a content hash
//
// ✨ Why choose lvlgrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Domain-agnostic – no game rules, no pathfinding, just structure
//   - Predictable – explicit errors, validation before mutation
//   - Extensible – callbacks and options for custom behavior
//
// Everything is organized under three subpackages:
//
//	grid/    — the generic Grid[T] container and its algorithms
//	gridmat/ — conversions to and from gonum matrices
//	gridviz/ — heatmap rendering (go-echarts HTML, gonum/plot PNG)
//
// Quick ASCII example:
//
//	    0  1  2
//	0 | a  b  c
//	1 | d  e  f
//
//	a 2×3 grid as rendered by Grid.String.
//
// Dive into the examples/ directory for a Life simulation, a match-3
// move, and a heatmap rendering walkthrough.
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
