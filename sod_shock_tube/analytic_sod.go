package sod_shock_tube

import (
	"math"

	"github.com/notargets/ctu2d/riemann"
)

// SodProblem is a shock tube on [0,1] with the diaphragm at X0
type SodProblem struct {
	Left, Right riemann.State1D
	X0, Gamma   float64
	PStar       float64
	UStar       float64
	rs          *riemann.Exact
}

// NewSod is the classic problem: rho, p = 1, 1 on the left and 0.125, 0.1 on the right
func NewSod() (sp *SodProblem, err error) {
	return NewShockTube(riemann.State1D{Rho: 1, P: 1}, riemann.State1D{Rho: 0.125, P: 0.1}, 0.5, 1.4)
}

func NewShockTube(left, right riemann.State1D, x0, gamma float64) (sp *SodProblem, err error) {
	sp = &SodProblem{
		Left:  left,
		Right: right,
		X0:    x0,
		Gamma: gamma,
		rs:    riemann.NewExact(gamma, riemann.DefaultMaxIter, riemann.DefaultTolerance),
	}
	if sp.PStar, sp.UStar, err = sp.rs.StarState(left, right); err != nil {
		sp = nil
	}
	return
}

// WavePositions returns the rarefaction head and tail, the contact and the
// shock at time t, for the left rarefaction / right shock pattern of Sod
func (sp *SodProblem) WavePositions(t float64) (x1, x2, x3, x4 float64) {
	var (
		gamma = sp.Gamma
		c_l   = math.Sqrt(gamma * sp.Left.P / sp.Left.Rho)
		c_r   = math.Sqrt(gamma * sp.Right.P / sp.Right.Rho)
		c_2   = c_l * math.Pow(sp.PStar/sp.Left.P, (gamma-1)/(2*gamma))
		s_sh  = sp.Right.U + c_r*math.Sqrt((gamma+1)/(2*gamma)*sp.PStar/sp.Right.P+(gamma-1)/(2*gamma))
	)
	x1 = sp.X0 + (sp.Left.U-c_l)*t
	x2 = sp.X0 + (sp.UStar-c_2)*t
	x3 = sp.X0 + sp.UStar*t
	x4 = sp.X0 + s_sh*t
	return
}

// Sample evaluates density, velocity, pressure and specific internal energy at X
func (sp *SodProblem) Sample(t float64, X []float64) (Rho, U, P, E []float64) {
	Rho = make([]float64, len(X))
	U = make([]float64, len(X))
	P = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		var W riemann.State1D
		switch {
		case t <= 0 && x < sp.X0:
			W = sp.Left
		case t <= 0:
			W = sp.Right
		default:
			W, _ = sp.rs.Sample(sp.Left, sp.Right, sp.PStar, sp.UStar, (x-sp.X0)/t)
		}
		Rho[i], U[i], P[i] = W.Rho, W.U, W.P
		E[i] = W.P / ((sp.Gamma - 1.) * W.Rho)
	}
	return
}

// SOD_calc returns the Sod profile at time t on the points bracketing each
// wave, enough to draw the exact solution as a polyline
func SOD_calc(t float64) (X, Rho, P, U, E []float64, err error) {
	var (
		sp    *SodProblem
		x_min = 0.
		x_max = 1.
		tol   = 1.e-8
	)
	if sp, err = NewSod(); err != nil {
		return
	}
	x1, x2, x3, x4 := sp.WavePositions(t)
	X = []float64{x_min}
	// Rarefaction fan resolved at ten points
	for n := 0; n <= 10; n++ {
		X = append(X, x1+float64(n)*(x2-x1)/10)
	}
	X = append(X, x3-tol, x3+tol, x4-tol, x4+tol, x_max)
	Rho, U, P, E = sp.Sample(t, X)
	return
}
