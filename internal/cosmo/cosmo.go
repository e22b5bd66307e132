// Package cosmo computes distances and lookback times in a flat-ish
// Lambda-CDM universe.
package cosmo

import (
	"errors"
	"math"
)

// Validation errors.
var (
	ErrNonPositiveH0   = errors.New("Hubble constant must be positive")
	ErrNegativeDensity = errors.New("density parameters must be non-negative")
	ErrBadRedshift     = errors.New("redshift must be finite and non-negative")
)

// Physical constants and unit conversions.
const (
	SpeedOfLightKmS = 299792.458

	// HubbleTimeGyr is 1/H0 in Gyr for H0 = 1 km/s/Mpc.
	HubbleTimeGyr = 977.79222

	kmPerMpc = 3.0856775814913673e19
	lyPerMpc = 3.2615637771674137e6
	auPerMpc = 2.062648062470964e11
)

// Mpc-to-X conversions for presentation. Pure scalar functions, no state.
func MpcToGly(d float64) float64 { return d * lyPerMpc / 1e9 }
func MpcToLy(d float64) float64  { return d * lyPerMpc }
func MpcToKm(d float64) float64  { return d * kmPerMpc }
func MpcToAU(d float64) float64  { return d * auPerMpc }
func MpcToLightSeconds(d float64) float64 {
	return d * kmPerMpc / SpeedOfLightKmS
}

// Params are the cosmological parameters of one model: Hubble constant in
// km/s/Mpc and the matter and dark-energy density fractions.
type Params struct {
	H0     float64
	OmegaM float64
	OmegaL float64
}

// Planck18 returns the Planck 2018 best-fit parameters, the default model.
func Planck18() Params {
	return Params{H0: 67.4, OmegaM: 0.315, OmegaL: 0.685}
}

// Validate checks the parameters. Non-flat models are allowed; use Flat to
// warn the user.
func (p Params) Validate() error {
	if !(p.H0 > 0) || math.IsInf(p.H0, 0) {
		return ErrNonPositiveH0
	}
	if p.OmegaM < 0 || p.OmegaL < 0 || math.IsNaN(p.OmegaM) || math.IsNaN(p.OmegaL) {
		return ErrNegativeDensity
	}
	return nil
}

// Flat reports whether the densities sum to 1 within a percent. The distance
// formulas here assume flatness; a false return means the numbers are only
// approximate.
func (p Params) Flat() bool {
	return math.Abs(p.OmegaM+p.OmegaL-1) <= 0.01
}

// E is the dimensionless Hubble parameter H(z)/H0.
func (p Params) E(z float64) float64 {
	zp1 := 1 + z
	return math.Sqrt(p.OmegaM*zp1*zp1*zp1 + p.OmegaL)
}

// Result holds every derived quantity for one redshift. Distances in Mpc.
type Result struct {
	Z             float64
	LookbackGyr   float64
	ComovingMpc   float64
	LuminosityMpc float64
	AngularMpc    float64
}

// Compute evaluates the model at redshift z. z = 0 short-circuits to all
// zeros without integrating.
func Compute(p Params, z float64) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if math.IsNaN(z) || math.IsInf(z, 0) || z < 0 {
		return Result{}, ErrBadRedshift
	}
	if z == 0 {
		return Result{Z: 0}, nil
	}

	comovingIntegral := integrate(func(zp float64) float64 {
		return 1 / p.E(zp)
	}, 0, z)
	lookbackIntegral := integrate(func(zp float64) float64 {
		return 1 / ((1 + zp) * p.E(zp))
	}, 0, z)

	dc := SpeedOfLightKmS / p.H0 * comovingIntegral

	return Result{
		Z:             z,
		LookbackGyr:   HubbleTimeGyr / p.H0 * lookbackIntegral,
		ComovingMpc:   dc,
		LuminosityMpc: (1 + z) * dc,
		AngularMpc:    dc / (1 + z),
	}, nil
}

const (
	simpsonTolerance = 1e-8
	simpsonMaxDepth  = 24
)

// integrate is an adaptive Simpson quadrature over [a, b].
func integrate(f func(float64) float64, a, b float64) float64 {
	m := (a + b) / 2
	fa, fm, fb := f(a), f(m), f(b)
	whole := (b - a) / 6 * (fa + 4*fm + fb)
	return adaptiveSimpson(f, a, b, fa, fm, fb, whole, simpsonTolerance, simpsonMaxDepth)
}

func adaptiveSimpson(f func(float64) float64, a, b, fa, fm, fb, whole, tol float64, depth int) float64 {
	m := (a + b) / 2
	lm := (a + m) / 2
	rm := (m + b) / 2
	flm, frm := f(lm), f(rm)

	left := (m - a) / 6 * (fa + 4*flm + fm)
	right := (b - m) / 6 * (fm + 4*frm + fb)

	if depth <= 0 || math.Abs(left+right-whole) <= 15*tol {
		return left + right + (left+right-whole)/15
	}
	return adaptiveSimpson(f, a, m, fa, flm, fm, left, tol/2, depth-1) +
		adaptiveSimpson(f, m, b, fm, frm, fb, right, tol/2, depth-1)
}
