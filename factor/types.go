package factor

// Key identifies a variable (camera pose or quadric landmark) in a Values
// container. Keys are opaque: the factor only requires that a pose key and
// a quadric key resolve to the right variable kinds at evaluation time.
type Key uint64

// MeasurementModel selects how a predicted bounding box is extracted from
// the projected dual conic.
type MeasurementModel int

const (
	// Simple extracts the box from the conic's axis-aligned tangent lines.
	// Cheap and smooth, but over-estimates the on-screen extent whenever
	// the ellipse leaves the image.
	Simple MeasurementModel = iota

	// Complex extracts the tight box of the visible ellipse region, clipped
	// to the image bounds of the factor's calibration.
	Complex
)

// String returns the model name for logs and factor printing.
func (m MeasurementModel) String() string {
	switch m {
	case Simple:
		return "Simple"
	case Complex:
		return "Complex"
	default:
		return "Unknown"
	}
}

// Validation controls the optional geometric pre-checks run before
// projection. Violations do not abort evaluation; they route onto the
// sentinel path like any other degeneracy.
type Validation int

const (
	// ValidationOff skips the pre-checks entirely. This is the default:
	// the checks cost a frame transform per call and in practice the
	// projection itself surfaces the same configurations as degenerate.
	ValidationOff Validation = iota

	// ValidationStrict rejects a quadric centroid behind the camera, a
	// camera inside the quadric, and a non-ellipse projection, before any
	// box extraction runs.
	ValidationStrict
)

// String returns the validation mode name.
func (v Validation) String() string {
	switch v {
	case ValidationOff:
		return "Off"
	case ValidationStrict:
		return "Strict"
	default:
		return "Unknown"
	}
}

// SentinelResidual is the value written into every residual component when
// evaluation hits degenerate geometry. Large enough to dominate genuine
// pixel residuals, small enough to keep robust-loss arithmetic finite.
const SentinelResidual = 1000.0

// Options configures a BoundingBox factor.
type Options struct {
	// Model selects the box extractor. Defaults to Simple.
	Model MeasurementModel

	// Validation enables the strict geometric pre-checks.
	// Defaults to ValidationOff.
	Validation Validation
}

// DefaultOptions returns the canonical factor configuration:
// Simple measurement model, validation off.
func DefaultOptions() Options {
	return Options{
		Model:      Simple,
		Validation: ValidationOff,
	}
}
