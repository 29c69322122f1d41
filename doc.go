// Package quadrics is the geometric observation model for ellipsoidal 3D
// landmarks seen through their 2D image bounding boxes — the measurement
// side of a quadric-based visual SLAM system.
//
// 🚀 What is quadrics?
//
//	A pure-Go library built on gonum that brings together:
//		• Dual conics: normalization, degeneracy/ellipse classification,
//		  loose (tangent-line) and tight (extremal-point) bounding boxes
//		• Constrained dual quadrics: bounded ellipsoids parameterized by a
//		  3D pose and three positive radii
//		• Quadric camera projection: C* = P·Q*·Pᵀ with exact analytic
//		  derivatives and a finite-difference validation path
//		• A bounding-box observation factor: residual + Jacobians for a
//		  Gauss-Newton / Levenberg-Marquardt optimizer, with a soft-failure
//		  degeneracy contract so ill-posed geometry never aborts a solve
//
// ✨ Why choose quadrics?
//
//   - Closed-form everything – projection and box Jacobians are analytic,
//     validated against central finite differences
//   - Honest failure modes – degenerate geometry yields typed sentinel
//     errors inside the core and a bounded penalty at the factor boundary
//   - Small value types – no shared mutable state, evaluations are
//     side-effect-free and safely parallelizable by the caller
//
// The module is organized into five subpackages:
//
//	core/    — Rot3, Pose3, Calibration, AlignedBox2 and shared tolerances
//	conic/   — dual conics and bounding-box extraction
//	quadric/ — constrained dual quadrics (bounded ellipsoids)
//	camera/  — quadric-through-pinhole projection and its derivatives
//	factor/  — the bounding-box observation factor for an external optimizer
//
// Data flows strictly bottom-up per evaluation:
//
//	quadric + pose ──▶ projected conic (+∂) ──▶ predicted box (+∂) ──▶ residual (+∂)
//
// See examples/ for end-to-end demos: reprojecting known quadrics into a
// camera ring, refining a perturbed trajectory with gonum/optimize, and
// plotting predicted boxes with gonum/plot.
//
//	go get github.com/katalvlaran/quadrics
package quadrics
