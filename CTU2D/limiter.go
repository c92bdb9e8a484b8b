package CTU2D

import (
	"math"

	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

// mcSlope limits the centered difference dc against twice the one sided
// differences dl, dr. Zero at an extremum, otherwise the smaller magnitude
// carrying the sign of dc.
func mcSlope(dc, dl, dr float64) float64 {
	if dl*dr <= 0 {
		return 0
	}
	return math.Copysign(math.Min(math.Abs(dc), 2*math.Abs(utils.MinAbs(dl, dr))), dc)
}

// limitMC2 is the second order monotonized central slope on a[-1..1]
func limitMC2(am1, a0, ap1 float64) float64 {
	return mcSlope(0.5*(ap1-am1), a0-am1, ap1-a0)
}

// limitMC4 is the fourth order slope on a[-1..1] using the MC2 slopes s[-1], s[1]
func limitMC4(am1, a0, ap1, sm1, sp1 float64) float64 {
	return mcSlope((2./3.)*(ap1-am1-0.25*(sp1+sm1)), a0-am1, ap1-a0)
}

// slopes fills dq with limited slopes of every primitive along dir, scaled by xi.
// Cells without the stencil keep a zero slope.
func (s *Solver) slopes(dir types.Direction, Q [4]grid.Field, xi grid.Field, dq, mc2 [4]grid.Field) (err error) {
	var (
		st = s.stride(dir)
	)
	if s.Config.Limiter == LimiterNone {
		for n := range dq {
			dq[n].Zero()
		}
		return
	}
	iBeg, iEnd, jBeg, jEnd := s.span(dir, 1)
	target := dq
	if s.Config.Limiter == LimiterMC4 {
		target = mc2
	}
	err = s.parallelRows(iBeg, iEnd, func(i0, i1 int) error {
		for n := range Q {
			a := Q[n].DataP
			for i := i0; i < i1; i++ {
				for j := jBeg; j < jEnd; j++ {
					k := xi.Ind(i, j)
					target[n].DataP[k] = limitMC2(a[k-st], a[k], a[k+st])
				}
			}
		}
		return nil
	})
	if err != nil || s.Config.Limiter == LimiterMC2 {
		s.scaleSlopes(dq, xi)
		return
	}
	iBeg, iEnd, jBeg, jEnd = s.span(dir, 2)
	err = s.parallelRows(iBeg, iEnd, func(i0, i1 int) error {
		for n := range Q {
			a, sl := Q[n].DataP, mc2[n].DataP
			for i := i0; i < i1; i++ {
				for j := jBeg; j < jEnd; j++ {
					k := xi.Ind(i, j)
					dq[n].DataP[k] = limitMC4(a[k-st], a[k], a[k+st], sl[k-st], sl[k+st])
				}
			}
		}
		return nil
	})
	s.scaleSlopes(dq, xi)
	return
}

func (s *Solver) scaleSlopes(dq [4]grid.Field, xi grid.Field) {
	for n := range dq {
		dq[n].M.MulElem(dq[n].M, xi.M)
	}
}
