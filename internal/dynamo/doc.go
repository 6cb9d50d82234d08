// Package dynamo provides the primitives shared by the binarylab models.
//
// The package defines the pieces every evaluator and the tick loop agree on:
//
//   - [Grid]: row-major scalar field sampled over two axes
//   - [Axis]: inclusive evenly spaced sample coordinates
//   - [ParameterError]: configuration rejected before evaluation
//   - [ParallelRows]: row-chunked worker fan-out for independent cells
//
// # Numerical Policy
//
// Singularities are clamped where they occur (see the roche and disk
// packages). A NaN or Inf reaching a [Grid] is a defect and is reported as
// [ErrNonFinite] by [Grid.Validate].
//
// # Thread Safety
//
// Grids are owned by the caller that requested them. Evaluators never retain
// a reference after returning.
package dynamo
