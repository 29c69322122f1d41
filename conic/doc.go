// Package conic implements dual conics: 3×3 symmetric matrices C* whose
// tangent lines satisfy lᵀ·C*·l = 0. The dual form is what a dual quadric
// projects to, and it is the representation from which image-plane bounding
// boxes are extracted.
//
// A dual conic is a scale-invariant value type: C* and s·C* (s ≠ 0)
// represent the same conic, so Equals compares after Normalize.
//
// Two bounding-box extractors are provided:
//
//   - Bounds — the envelope box from the tangent-line cofactor formula.
//     Closed form, cheap, with an exact analytic 4×9 Jacobian over the
//     row-major conic entries.
//   - SmartBounds — the tight box through the actual extremal points of the
//     ellipse boundary, clipped to the calibrated image extent. Numerically
//     delicate: it requires a genuine bounded ellipse and fails with a typed
//     error (ErrNotEllipse, ErrNoRealExtrema) otherwise, never with garbage
//     bounds. Its Jacobian is computed by central finite differences.
//
// Classification is determinant-based: IsDegenerate tests |det C*| against
// DefaultDegeneracyTol directly, which is faster than eigenvalue sign
// analysis and avoids eigen-decomposition ill-conditioning near degeneracy.
//
// Errors follow the usual sentinel convention and are matched with
// errors.Is; the observation factor converts them into its soft-failure
// response rather than letting them escape an optimizer iteration.
package conic
