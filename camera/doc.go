// Package camera projects constrained dual quadrics through a calibrated
// pinhole camera into dual conics, and supplies the derivatives of that
// projection.
//
// The projection is purely algebraic: with P = K·(X⁻¹)₃ₓ₄ the 3×4 camera
// matrix for the camera-to-world pose X and intrinsics K, the image of the
// dual quadric Q* is the dual conic
//
//	C* = P · Q* · Pᵀ,
//
// the silhouette (outline) of the ellipsoid — a consequence of projective
// duality, not a sampling-based rendering.
//
// Because the map is bilinear in P and linear in Q*, both Jacobians come out
// in closed form by the product rule: ∂C*/∂pose (9×6) differentiates P along
// the six se(3) generators of a right perturbation, and ∂C*/∂quadric (9×9)
// differentiates Q* along the quadric's 9-dimensional manifold. Conic
// matrices are vectorized row-major; pose coordinates are rotation-first.
// NumericalProjectionJacobians computes the same two matrices by central
// finite differences (gonum diff/fd) and exists as the validation/fallback
// path — the two must agree to numeric tolerance.
//
// Project performs no pose/quadric validity checking; a camera at a singular
// configuration can produce non-finite entries, reported as
// ErrDegenerateProjection. Geometric pre-validation is the caller's
// responsibility (the observation factor owns that policy).
package camera
