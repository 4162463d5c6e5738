// Package geom provides the integer geometry primitives underlying a
// terminal-UI layout engine: Offset, Size, Spacing, and Region.
//
// All four types are immutable values with structural equality; every
// operation is a pure function that returns a new value and completes in
// constant time, which makes the types safe to share across concurrent
// layout workers without synchronization.
//
// Three contracts hold package-wide:
//
//   - Containment is half-open: a point on the left or top edge is inside,
//     a point on the right or bottom edge is outside.
//   - Fractional scaling rounds half-to-even on each axis.
//   - Dimensions never go negative. Constructors and operations clamp at
//     zero rather than returning errors, so transient degenerate geometry
//     (a zero-size widget mid-layout) flows through every operation as an
//     ordinary value.
package geom
