package factor

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidNoise marks a diagonal noise model with non-positive or
// non-finite sigmas.
var ErrInvalidNoise = errors.New("factor: noise sigmas must be positive and finite")

// DiagonalNoise is a diagonal Gaussian noise model over the four box
// components, in pixels. The factor carries it for printing and equality;
// it never weights residuals here — whitening is the solver's job.
type DiagonalNoise struct {
	sigmas [4]float64
}

// NewDiagonalNoise builds a noise model from per-component standard
// deviations (xmin, ymin, xmax, ymax).
func NewDiagonalNoise(sigmas [4]float64) (DiagonalNoise, error) {
	for _, s := range sigmas {
		if !(s > 0) || math.IsInf(s, 0) {
			return DiagonalNoise{}, fmt.Errorf("%w: got %v", ErrInvalidNoise, sigmas)
		}
	}
	return DiagonalNoise{sigmas: sigmas}, nil
}

// IsotropicNoise builds a noise model with the same sigma on all four
// components.
func IsotropicNoise(sigma float64) (DiagonalNoise, error) {
	return NewDiagonalNoise([4]float64{sigma, sigma, sigma, sigma})
}

// Sigmas returns the per-component standard deviations.
func (n DiagonalNoise) Sigmas() [4]float64 { return n.sigmas }

// Equals reports whether both models agree componentwise within tol.
func (n DiagonalNoise) Equals(other DiagonalNoise, tol float64) bool {
	for i := range n.sigmas {
		if math.Abs(n.sigmas[i]-other.sigmas[i]) > tol {
			return false
		}
	}
	return true
}

// String renders the sigmas for factor printing.
func (n DiagonalNoise) String() string {
	return fmt.Sprintf("diagonal sigmas [%g %g %g %g]",
		n.sigmas[0], n.sigmas[1], n.sigmas[2], n.sigmas[3])
}
