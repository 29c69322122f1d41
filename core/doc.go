// Package core defines the small geometric value types shared by the
// quadrics module: 3D rotations and rigid poses, pinhole calibration, and
// axis-aligned image boxes.
//
// All types are immutable value objects. Matrix-returning accessors hand
// back fresh gonum matrices owned by the caller; no method mutates its
// receiver. Vectors use github.com/golang/geo (r3 for space, r2 for the
// image plane).
//
// Conventions:
//
//   - Pose3 stores the camera-to-world (or body-to-world) transform; its
//     Matrix() is the 4×4 homogeneous form and Inverse() maps world points
//     into the local frame.
//   - Local coordinates on SE(3) are 6-vectors ordered rotation first:
//     (ω₁, ω₂, ω₃, t₁, t₂, t₃). Retract composes the exponential of such a
//     perturbation on the right, in the body frame.
//   - Calibration follows the Cal3_S2 argument order (fx, fy, skew, u0, v0);
//     the usable image extent is (2·u0) × (2·v0).
//
// Example usage:
//
//	pose := core.LookAt(r3.Vector{X: 10}, r3.Vector{}, r3.Vector{Z: 1})
//	cal, err := core.NewCalibration(525, 525, 0, 320, 240)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	P := cal.K() // 3×3 intrinsic matrix
package core
