// Package quadric implements the constrained dual quadric: a 4×4 symmetric
// matrix Q* representing a bounded ellipsoid in dual (tangent-plane) form,
// πᵀ·Q*·π = 0 for tangent planes π.
//
// "Constrained" means the matrix is never free-form: it is always built as
//
//	Q* = Z · diag(r₁², r₂², r₃², −1) · Zᵀ
//
// from a rigid pose Z and three radii, so it encodes a real, finite,
// non-degenerate ellipsoid centered at the pose origin and aligned to its
// axes. Construction validates the radii (strictly positive, finite) and
// fails rather than producing an invariant-violating object.
//
// Although the raw matrix has more numeric degrees of freedom, the quadric
// is parameterized on a 9-dimensional manifold — 6 pose + 3 radii — and
// Retract moves along exactly that manifold. This is the parameterization
// the projection derivatives and the observation factor differentiate over.
//
// Contains and IsBehind classify a camera pose relative to the ellipsoid;
// the observation factor uses them for its optional strict pre-projection
// validation.
package quadric
