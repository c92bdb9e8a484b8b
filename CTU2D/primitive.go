package CTU2D

import (
	"github.com/notargets/ctu2d/eos"
	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

// floorPressure clamps p from below at utils.SmallP; NaN passes through
func floorPressure(p float64) (pf float64, floored bool) {
	if p < utils.SmallP {
		return utils.SmallP, true
	}
	return p, false
}

// consToPrim is the primitive state (rho, u, v, p) of one conserved state.
// Density is not guarded: rho <= 0 yields Inf/NaN for the caller to detect.
func consToPrim(U [4]float64, e eos.EOS) (q [4]float64, floored bool) {
	var (
		rho = U[types.IDens]
		u   = U[types.IXMom] / rho
		v   = U[types.IYMom] / rho
		ei  = (U[types.IEner] - 0.5*rho*(u*u+v*v)) / rho
	)
	q[types.IRho], q[types.IU], q[types.IV] = rho, u, v
	q[types.IP], floored = floorPressure(e.Pressure(rho, ei))
	return
}

// primitives fills ws.Q over the whole padded grid
func (s *Solver) primitives(U [4]grid.Field, Q [4]grid.Field) error {
	qy := s.Grid.Qy
	return s.parallelRows(0, s.Grid.Qx, func(iBeg, iEnd int) error {
		var (
			floors  int64
			uc      [4]float64
			q       [4]float64
			floored bool
		)
		for k := iBeg * qy; k < iEnd*qy; k++ {
			for n := range uc {
				uc[n] = U[n].DataP[k]
			}
			if q, floored = consToPrim(uc, s.EOS); floored {
				floors++
			}
			for n := range q {
				Q[n].DataP[k] = q[n]
			}
		}
		if floors != 0 {
			s.floorCount.Add(floors)
		}
		return nil
	})
}
