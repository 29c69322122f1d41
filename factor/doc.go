// Package factor implements the bounding-box observation factor: the
// residual/Jacobian functional that connects a camera pose and a constrained
// dual quadric through one measured 2D bounding box.
//
// Evaluation composes the lower layers per call and is side-effect-free:
//
//	project quadric → dual conic (+∂)
//	extract box per measurement model (+∂)
//	residual = predicted − measured  (xmin, ymin, xmax, ymax)
//	chain rule: ∂res/∂pose = ∂box/∂conic · ∂conic/∂pose, likewise for quadric
//
// Two measurement models select the box extractor: Simple uses the
// tangent-line bounds, Complex the tight extremal-point bounds.
//
// 🛡 Degeneracy policy
//
// A factor must never abort the surrounding optimization because one
// landmark hypothesis is geometrically ill-posed. If any step fails —
// degenerate projection, non-ellipse conic in Complex mode, failed
// extremal solve — Evaluate returns a fixed large residual
// (SentinelResidual in all four components) with zero Jacobians: for that
// iteration the factor is an inert bounded penalty carrying no gradient,
// and the solver keeps working off every other well-posed factor. No error
// and no NaN ever crosses the evaluation boundary. This is a deliberate
// contract, not a fallback of convenience.
//
// Optional strict pre-projection validation (quadric behind the camera,
// camera inside the quadric, non-ellipse projection) can be enabled through
// Options.Validation; it routes bad geometry onto the same sentinel path
// before the numeric work. The default is ValidationOff — see the option's
// doc for the open trade-off.
//
// The noise model attached to a factor is carried for printing and equality
// only; residual weighting is the external solver's concern.
package factor
