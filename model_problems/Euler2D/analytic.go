package Euler2D

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/ctu2d/riemann"
	"github.com/notargets/ctu2d/sod_shock_tube"
)

var ErrNoAnalyticSolution = errors.New("no analytic solution")

// ExactState is the analytic primitive state at (x, y) and time t for the
// cases that have one
func (c *Euler) ExactState(x, y, t float64) (rho, u, v, p float64, err error) {
	var (
		g = c.Grid
	)
	switch c.Case {
	case ADVECT:
		// Periodic translation at unit velocity in both directions
		rho, u, v, p = c.InitialState(x-t, y-t)
	case CONTACT:
		rho, u, v, p = c.InitialState(x, y)
	case SOD, SODY:
		s := x - 0.5*(g.XMin+g.XMax) + 0.5
		if c.Case == SODY {
			s = y - 0.5*(g.YMin+g.YMax) + 0.5
		}
		if c.sod == nil {
			if c.sod, err = sod_shock_tube.NewShockTube(
				riemann.State1D{Rho: 1, P: 1}, riemann.State1D{Rho: 0.125, P: 0.1}, 0.5, c.FS.Gamma); err != nil {
				return
			}
		}
		Rho, U, P, _ := c.sod.Sample(t, []float64{s})
		rho, p = Rho[0], P[0]
		if c.Case == SOD {
			u = U[0]
		} else {
			v = U[0]
		}
	default:
		err = fmt.Errorf("%w for %s", ErrNoAnalyticSolution, c.Case.Print())
	}
	return
}

// ErrorNorms compares the interior with the analytic solution at the current
// time, returning the mean absolute and maximum error of each conserved variable
func (c *Euler) ErrorNorms() (l1, lMax [4]float64, err error) {
	var (
		g    = c.Grid
		diff [4][]float64
	)
	for n := range diff {
		diff[n] = make([]float64, 0, g.Nx*g.Ny)
	}
	for i := g.ILo; i <= g.IHi; i++ {
		for j := g.JLo; j <= g.JHi; j++ {
			var rho, u, v, p float64
			if rho, u, v, p, err = c.ExactState(g.X[i], g.Y[j], c.Time); err != nil {
				return
			}
			Q := c.FS.Conserved(rho, u, v, p)
			for n := range diff {
				diff[n] = append(diff[n], c.U[n].At(i, j)-Q[n])
			}
		}
	}
	for n := range diff {
		l1[n] = floats.Norm(diff[n], 1) / float64(len(diff[n]))
		lMax[n] = floats.Norm(diff[n], math.Inf(1))
	}
	return
}
