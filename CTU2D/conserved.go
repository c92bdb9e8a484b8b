package CTU2D

import (
	"github.com/notargets/ctu2d/eos"
	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/types"
)

// primToCons maps a primitive interface state back to conserved form
func primToCons(q [4]float64, e eos.EOS) (U [4]float64) {
	rho := q[types.IRho]
	U[types.IDens] = rho
	U[types.IXMom] = rho * q[types.IU]
	U[types.IYMom] = rho * q[types.IV]
	U[types.IEner] = e.RhoE(q[types.IP]) + 0.5*rho*(q[types.IU]*q[types.IU]+q[types.IV]*q[types.IV])
	return
}

// toConserved converts each interface state field set in place
func (s *Solver) toConserved(states ...[4]grid.Field) error {
	qy := s.Grid.Qy
	return s.parallelRows(0, s.Grid.Qx, func(iBeg, iEnd int) error {
		var q [4]float64
		for _, V := range states {
			for k := iBeg * qy; k < iEnd*qy; k++ {
				for n := range q {
					q[n] = V[n].DataP[k]
				}
				U := primToCons(q, s.EOS)
				for n := range U {
					V[n].DataP[k] = U[n]
				}
			}
		}
		return nil
	})
}
